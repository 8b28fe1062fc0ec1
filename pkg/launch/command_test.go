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

package launch

import (
	"strings"
	"testing"
)

func TestCompose(t *testing.T) {
	testCases := []struct {
		name      string
		fragments []Fragment
		want      string
	}{
		{
			name: "no fragments",
			want: "",
		},
		{
			name:      "all absent",
			fragments: []Fragment{None(), Some(""), Some("   ")},
			want:      "",
		},
		{
			name:      "absent in the middle",
			fragments: []Fragment{Some("A=1"), None(), Some("exec"), Some(""), Some("$PWD/bin/x.sh")},
			want:      "A=1 exec $PWD/bin/x.sh",
		},
		{
			name:      "surrounding whitespace trimmed",
			fragments: []Fragment{Some(" A=1 "), Some("exec ")},
			want:      "A=1 exec",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compose(tc.fragments...); got != tc.want {
				t.Errorf("Compose() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCommandString(t *testing.T) {
	testCases := []struct {
		name string
		cmd  Command
		want string
	}{
		{
			name: "script only",
			cmd:  Command{Script: Some("$PWD/bin/standalone.sh")},
			want: "exec $PWD/bin/standalone.sh",
		},
		{
			name: "every group",
			cmd: Command{
				EnvironmentVariables: []Fragment{Some("A=1"), Some("B=2")},
				JavaHome:             Some("JAVA_HOME=$PWD/.java-buildpack/open_jdk_jre"),
				JavaOpts:             Some(`JAVA_OPTS="-Dx=y"`),
				Script:               Some("$PWD/bin/artifactory.sh"),
			},
			want: `A=1 B=2 JAVA_HOME=$PWD/.java-buildpack/open_jdk_jre JAVA_OPTS="-Dx=y" exec $PWD/bin/artifactory.sh`,
		},
		{
			name: "no home",
			cmd: Command{
				EnvironmentVariables: []Fragment{Some("A=1")},
				JavaOpts:             Some(`JAVA_OPTS="-Dx=y"`),
				Script:               Some("$PWD/bin/artifactory.sh"),
			},
			want: `A=1 JAVA_OPTS="-Dx=y" exec $PWD/bin/artifactory.sh`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.cmd.String()
			if got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
			if strings.Contains(got, "  ") || strings.TrimSpace(got) != got {
				t.Errorf("String() = %q has stray spaces", got)
			}
			if got != tc.cmd.String() {
				t.Errorf("String() is not stable across calls")
			}
		})
	}
}

func TestCommandFragmentsOrder(t *testing.T) {
	cmd := Command{
		EnvironmentVariables: []Fragment{Some("E=1")},
		JavaHome:             Some("H"),
		JavaOpts:             Some("P"),
		Script:               Some("S"),
	}
	var got []string
	for _, f := range cmd.Fragments() {
		if v, ok := f.Value(); ok {
			got = append(got, v)
		}
	}
	if want := "E=1 H P exec S"; strings.Join(got, " ") != want {
		t.Errorf("Fragments() = %v, want %q", got, want)
	}
}
