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

// Package buildpacktest contains utilities for testing buildpacks that
// use the `gcpbuildpack` package.
package buildpacktest

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/buildpacks/libcnb/v2"
	gcp "github.com/javabuildpack/containers/pkg/gcpbuildpack"
)

// Result encapsulates the result of running a buildpack phase.
type Result struct {
	// Output is everything the buildpack logged during the phase.
	Output string
	// Processes are the launch processes contributed by the build function.
	Processes []libcnb.Process
}

// WebProcess returns the command of the web process, if one was added.
func (r *Result) WebProcess() ([]string, bool) {
	for _, p := range r.Processes {
		if p.Type == "web" {
			return p.Command, true
		}
	}
	return nil, false
}

type config struct {
	files    map[string]string
	modes    map[string]os.FileMode
	envs     []string
	bindings libcnb.Bindings
}

// Option is a type for buildpack test options.
type Option func(cfg *config)

// WithFiles specifies application files, keyed by path relative to the application root.
func WithFiles(files map[string]string) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithFileMode overrides the mode of an application file created by WithFiles.
func WithFileMode(path string, mode os.FileMode) Option {
	return func(cfg *config) {
		if cfg.modes == nil {
			cfg.modes = map[string]os.FileMode{}
		}
		cfg.modes[path] = mode
	}
}

// WithEnvs specifies env vars to set for the buildpack test, in KEY=VALUE form.
func WithEnvs(envs ...string) Option {
	return func(cfg *config) {
		cfg.envs = append(cfg.envs, envs...)
	}
}

// WithBindings specifies the platform bindings visible to the buildpack.
func WithBindings(bindings libcnb.Bindings) Option {
	return func(cfg *config) {
		cfg.bindings = bindings
	}
}

// TestDetect is a helper for testing a buildpack's implementation of /bin/detect.
func TestDetect(t *testing.T, detectFn gcp.DetectFn, files map[string]string, envs []string, wantPass bool) {
	t.Helper()
	ctx, _, _ := setUp(t, WithFiles(files), WithEnvs(envs...))
	result, err := detectFn(ctx)
	if err != nil {
		t.Fatalf("detect got error: %v", err)
	}
	if got := result.Result().Pass; got != wantPass {
		t.Errorf("detect pass = %t, want %t (%s)", got, wantPass, result.Reason())
	}
}

// RunBuild runs buildFn against a temporary application root. The root is
// returned so callers can inspect the files the build changed.
func RunBuild(t *testing.T, buildFn gcp.BuildFn, opts ...Option) (*Result, string, error) {
	t.Helper()
	ctx, root, out := setUp(t, opts...)
	err := buildFn(ctx)
	return &Result{Output: out.String(), Processes: ctx.Processes()}, root, err
}

func setUp(t *testing.T, opts ...Option) (*gcp.Context, string, *bytes.Buffer) {
	t.Helper()
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}

	for _, e := range cfg.envs {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			t.Fatalf("env %q is not in KEY=VALUE form", e)
		}
		t.Setenv(k, v)
	}

	root := t.TempDir()
	for name, content := range cfg.files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating directory for %s: %v", name, err)
		}
		mode, ok := cfg.modes[name]
		if !ok {
			mode = 0644
		}
		if err := os.WriteFile(path, []byte(content), mode); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
		if err := os.Chmod(path, mode); err != nil {
			t.Fatalf("chmod %s: %v", name, err)
		}
	}

	var out bytes.Buffer
	ctx := gcp.NewContext(
		gcp.WithApplicationRoot(root),
		gcp.WithBindings(cfg.bindings),
		gcp.WithLogger(log.New(&out, "", 0)),
	)
	return ctx, root, &out
}
