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

package lib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	buildpacktest "github.com/javabuildpack/containers/internal/buildpacktest"
)

func TestDetect(t *testing.T) {
	testCases := []struct {
		name  string
		files map[string]string
		want  bool
	}{
		{
			name:  "with standalone script",
			files: map[string]string{"bin/standalone.sh": "#!/bin/sh"},
			want:  true,
		},
		{
			name:  "script outside bin",
			files: map[string]string{"standalone.sh": "#!/bin/sh"},
		},
		{
			name:  "artifactory script only",
			files: map[string]string{"bin/artifactory.sh": "#!/bin/sh"},
		},
		{
			name:  "empty app",
			files: map[string]string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buildpacktest.TestDetect(t, DetectFn, tc.files, nil, tc.want)
		})
	}
}

func TestBuild(t *testing.T) {
	testCases := []struct {
		name string
		envs []string
		want []string
	}{
		{
			name: "default",
			envs: []string{"JAVA_HOME="},
			want: []string{"bash", "-c", "exec $PWD/bin/standalone.sh"},
		},
		{
			name: "java home inside the app",
			envs: []string{"JAVA_HOME=.java-buildpack/open_jdk_jre"},
			want: []string{"bash", "-c", "JAVA_HOME=$PWD/.java-buildpack/open_jdk_jre exec $PWD/bin/standalone.sh"},
		},
		{
			name: "java home outside the app",
			envs: []string{"JAVA_HOME=/layers/jre"},
			want: []string{"bash", "-c", "JAVA_HOME=/layers/jre exec $PWD/bin/standalone.sh"},
		},
		{
			name: "database services are ignored",
			envs: []string{
				"JAVA_HOME=",
				`VCAP_SERVICES={"postgresql":[{"name":"db","credentials":{"uri":"postgres://h/db"}}]}`,
			},
			want: []string{"bash", "-c", "exec $PWD/bin/standalone.sh"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, root, err := buildpacktest.RunBuild(t, BuildFn,
				buildpacktest.WithFiles(map[string]string{"bin/standalone.sh": "#!/bin/sh"}),
				buildpacktest.WithFileMode("bin/standalone.sh", 0600),
				buildpacktest.WithEnvs(append([]string{"VCAP_SERVICES=", "JBP_STRICT_SERVICE_BINDING=false"}, tc.envs...)...),
			)
			if err != nil {
				t.Fatalf("build got error: %v\n%s", err, result.Output)
			}
			got, ok := result.WebProcess()
			if !ok {
				t.Fatalf("build did not add a web process, processes: %v", result.Processes)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("web process mismatch (-want +got):\n%s", diff)
			}

			info, err := os.Stat(filepath.Join(root, "bin", "standalone.sh"))
			if err != nil {
				t.Fatalf("stat: %v", err)
			}
			if mode := info.Mode().Perm(); mode != 0755 {
				t.Errorf("bin/standalone.sh mode = %#o, want %#o", mode, 0755)
			}
		})
	}
}

func TestBuildWithoutScript(t *testing.T) {
	result, _, err := buildpacktest.RunBuild(t, BuildFn, buildpacktest.WithEnvs("VCAP_SERVICES=", "JBP_STRICT_SERVICE_BINDING=false"))
	if err == nil {
		t.Fatal("build got nil error, want an error")
	}
	if len(result.Processes) != 0 {
		t.Errorf("build added processes %v", result.Processes)
	}
}
