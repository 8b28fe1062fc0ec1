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

package container

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/javabuildpack/containers/pkg/buildererror"
)

func TestKindID(t *testing.T) {
	testCases := []struct {
		name string
		want string
	}{
		{name: "Standalone", want: "standalone"},
		{name: "Artifactory", want: "artifactory"},
		{name: "JBossStandalone", want: "j-boss-standalone"},
		{name: "DistZIP", want: "dist-zip"},
		{name: "Spring_Boot", want: "spring-boot"},
		{name: "Tomcat9Server", want: "tomcat9-server"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := (Kind{Name: tc.name}).ID(); got != tc.want {
				t.Errorf("Kind{Name: %q}.ID() = %q, want %q", tc.name, got, tc.want)
			}
		})
	}
}

func TestBuiltinKinds(t *testing.T) {
	if Standalone.Specialized() {
		t.Error("Standalone.Specialized() = true, want false")
	}
	if !Artifactory.Specialized() {
		t.Error("Artifactory.Specialized() = false, want true")
	}
	for _, k := range Builtin {
		if err := k.validate(); err != nil {
			t.Errorf("builtin kind %s is invalid: %v", k.Name, err)
		}
	}
}

func TestLookup(t *testing.T) {
	testCases := []struct {
		name   string
		want   Kind
		wantOK bool
	}{
		{name: "Artifactory", want: Artifactory, wantOK: true},
		{name: "artifactory", want: Artifactory, wantOK: true},
		{name: "STANDALONE", want: Standalone, wantOK: true},
		{name: "tomcat"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Lookup(Builtin, tc.name)
			if ok != tc.wantOK {
				t.Fatalf("Lookup(%q) ok = %t, want %t", tc.name, ok, tc.wantOK)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Lookup(%q) mismatch (-want +got):\n%s", tc.name, diff)
			}
		})
	}
}

func writeKinds(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "containers.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoadKinds(t *testing.T) {
	path := writeKinds(t, `
[[containers]]
name = "WildFly"
script = "standalone.sh"
property_prefix = "jboss"
database_pattern = "postgres|mysql"

[[containers]]
name = "Plain"
script = "run.sh"
`)
	got, err := LoadKinds(path)
	if err != nil {
		t.Fatalf("LoadKinds() got error: %v", err)
	}
	want := []Kind{
		{Name: "WildFly", Script: "standalone.sh", PropertyPrefix: "jboss", DatabasePattern: "postgres|mysql"},
		{Name: "Plain", Script: "run.sh"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadKinds() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadKindsInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "not toml",
			content: `[[containers]`,
		},
		{
			name: "unknown key",
			content: `[[containers]]
name = "A"
script = "a.sh"
prefix = "typo"`,
		},
		{
			name: "missing script",
			content: `[[containers]]
name = "A"`,
		},
		{
			name: "script with directory",
			content: `[[containers]]
name = "A"
script = "../a.sh"`,
		},
		{
			name: "database without prefix",
			content: `[[containers]]
name = "A"
script = "a.sh"
database_pattern = "postgresql"`,
		},
		{
			name: "bad pattern",
			content: `[[containers]]
name = "A"
script = "a.sh"
property_prefix = "a"
database_pattern = "("`,
		},
		{
			name: "duplicate",
			content: `[[containers]]
name = "A"
script = "a.sh"

[[containers]]
name = "a"
script = "b.sh"`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadKinds(writeKinds(t, tc.content))
			if err == nil {
				t.Fatal("LoadKinds() got nil error, want error")
			}
			if got := buildererror.StatusOf(err); got != buildererror.StatusInvalidArgument {
				t.Errorf("StatusOf(err) = %v, want %v", got, buildererror.StatusInvalidArgument)
			}
		})
	}
}
