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

package buildererror

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is a canonical status code, numbered as in google.rpc.Code.
type Status int

// Statuses used by the container lifecycle. Only StatusInternal is attributed to the buildpack.
const (
	StatusOk                 Status = 0
	StatusUnknown            Status = 2
	StatusInvalidArgument    Status = 3
	StatusNotFound           Status = 5
	StatusFailedPrecondition Status = 9
	StatusInternal           Status = 13
)

var statusNames = map[Status]string{
	StatusOk:                 "OK",
	StatusUnknown:            "UNKNOWN",
	StatusInvalidArgument:    "INVALID_ARGUMENT",
	StatusNotFound:           "NOT_FOUND",
	StatusFailedPrecondition: "FAILED_PRECONDITION",
	StatusInternal:           "INTERNAL",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("STATUS(%d)", int(s))
}

// UserAttributed reports whether a failure with this status is caused by the application rather than the buildpack.
func (s Status) UserAttributed() bool {
	return s != StatusOk && s != StatusInternal
}

var _ json.Marshaler = (*Status)(nil)
var _ json.Unmarshaler = (*Status)(nil)

// MarshalJSON encodes the status as its canonical name.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", s)), nil
}

// UnmarshalJSON decodes a canonical name, case-insensitively.
func (s *Status) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}
	for st, n := range statusNames {
		if strings.EqualFold(n, val) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown value %q", val)
}
