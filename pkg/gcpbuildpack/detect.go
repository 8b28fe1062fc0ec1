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

package gcpbuildpack

import (
	"github.com/buildpacks/libcnb/v2"
)

// DetectResult represents the result of the detect run and the reason for it.
type DetectResult interface {
	Result() libcnb.DetectResult
	Reason() string
}

type detectResult struct {
	result libcnb.DetectResult
	reason string
}

func (d *detectResult) Result() libcnb.DetectResult {
	return d.result
}

func (d *detectResult) Reason() string {
	return d.reason
}

// OptIn is used during the detect phase to opt in to the build process.
func OptIn(reason string) DetectResult {
	return opt(true, "Opting in: "+reason)
}

// OptInFileFound is used to opt into the build process based on file presence.
func OptInFileFound(file string) DetectResult {
	return OptIn("found " + file)
}

// OptOut is used during the detect phase to opt out of the build process.
func OptOut(reason string) DetectResult {
	return opt(false, "Opting out: "+reason)
}

// OptOutFileNotFound is used to opt out of the build process based on file absence.
func OptOutFileNotFound(file string) DetectResult {
	return OptOut(file + " not found")
}

func opt(pass bool, reason string) DetectResult {
	return &detectResult{
		reason: reason,
		result: libcnb.DetectResult{Pass: pass},
	}
}
