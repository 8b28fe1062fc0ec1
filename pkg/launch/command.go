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

// Package launch assembles process start command lines.
package launch

import (
	"strings"
)

// Exec replaces the launching shell with the started process.
const Exec = "exec"

// Fragment is an optional token of a command line. The zero value is absent.
type Fragment struct {
	value   string
	present bool
}

// Some returns a fragment holding v. Blank values are absent.
func Some(v string) Fragment {
	v = strings.TrimSpace(v)
	return Fragment{value: v, present: v != ""}
}

// None returns an absent fragment.
func None() Fragment {
	return Fragment{}
}

// Value returns the fragment text and whether it is present.
func (f Fragment) Value() (string, bool) {
	return f.value, f.present
}

// Compose joins the present fragments, in order, with single spaces.
func Compose(fragments ...Fragment) string {
	var parts []string
	for _, f := range fragments {
		if v, ok := f.Value(); ok {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}

// Command is a launch command line in its fixed group order.
type Command struct {
	EnvironmentVariables []Fragment
	JavaHome             Fragment
	JavaOpts             Fragment
	Script               Fragment
}

// Fragments returns every group of the command in launch order: environment
// assignments, Java home, Java options, exec and the script.
func (c Command) Fragments() []Fragment {
	fs := make([]Fragment, 0, len(c.EnvironmentVariables)+4)
	fs = append(fs, c.EnvironmentVariables...)
	return append(fs, c.JavaHome, c.JavaOpts, Some(Exec), c.Script)
}

func (c Command) String() string {
	return Compose(c.Fragments()...)
}
