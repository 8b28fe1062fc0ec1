// Copyright 2026 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package buildererror defines the error type returned by container lifecycle phases.
package buildererror

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	errorIDLength = 8
)

// ID is a short identifier for an error message, used to correlate failures across builds.
type ID string

// Error is a lifecycle failure attributed to either the user or the buildpack.
type Error struct {
	BuildpackID      string `json:"buildpackId,omitempty"`
	BuildpackVersion string `json:"buildpackVersion,omitempty"`
	Status           Status `json:"canonicalCode"`
	ID               ID     `json:"errorId"`
	Message          string `json:"errorMessage"`

	cause error
}

func (e *Error) Error() string {
	if e.ID == "" {
		return e.Message
	}
	return fmt.Sprintf("%s [id:%s]", e.Message, e.ID)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Errorf constructs an Error.
func Errorf(status Status, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{
		Status:  status,
		ID:      GenerateErrorID(msg),
		Message: msg,
	}
}

// Wrapf constructs an Error whose message ends with the text of cause.
func Wrapf(status Status, cause error, format string, args ...interface{}) *Error {
	e := Errorf(status, "%s: %v", fmt.Sprintf(format, args...), cause)
	e.cause = cause
	return e
}

// InternalErrorf constructs an Error with status StatusInternal (buildpack-attributed).
func InternalErrorf(format string, args ...interface{}) *Error {
	return Errorf(StatusInternal, format, args...)
}

// UserErrorf constructs an Error with status StatusUnknown (user-attributed).
func UserErrorf(format string, args ...interface{}) *Error {
	return Errorf(StatusUnknown, format, args...)
}

// StatusOf returns the status of the first *Error in err's chain, StatusOk for nil
// and StatusUnknown for errors of any other type.
func StatusOf(err error) Status {
	if err == nil {
		return StatusOk
	}
	var be *Error
	if errors.As(err, &be) {
		return be.Status
	}
	return StatusUnknown
}

// GenerateErrorID creates a short hash from the provided parts.
func GenerateErrorID(parts ...string) ID {
	h := sha256.New()
	for _, p := range parts {
		io.WriteString(h, p)
	}
	result := fmt.Sprintf("%x", h.Sum(nil))

	// Only a reporting aid, so keep it short.
	return ID(strings.ToLower(result[:errorIDLength]))
}
