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

// Package gcpbuildpack is a framework for implementing buildpacks (https://buildpacks.io/).
package gcpbuildpack

import (
	"log"
	"os"

	"github.com/buildpacks/libcnb/v2"
	"github.com/javabuildpack/containers/pkg/env"
)

var (
	defaultLogger = log.New(os.Stderr, "", 0)
)

// DetectFn is the callback signature for the detect phase.
type DetectFn func(*Context) (DetectResult, error)

// BuildFn is the callback signature for the build phase.
type BuildFn func(*Context) error

// Context provides contextually aware functions for buildpack authors.
type Context struct {
	info            libcnb.BuildpackInfo
	applicationRoot string
	debug           bool
	logger          *log.Logger
	bindings        libcnb.Bindings
	processes       []libcnb.Process
}

// ContextOption configures NewContext functions.
type ContextOption func(ctx *Context)

// WithApplicationRoot sets the application root in a context.
func WithApplicationRoot(root string) ContextOption {
	return func(ctx *Context) {
		ctx.applicationRoot = root
	}
}

// WithBuildpackInfo sets the buildpack info in a context.
func WithBuildpackInfo(info libcnb.BuildpackInfo) ContextOption {
	return func(ctx *Context) {
		ctx.info = info
	}
}

// WithBindings sets the platform service bindings in a context.
func WithBindings(bindings libcnb.Bindings) ContextOption {
	return func(ctx *Context) {
		ctx.bindings = bindings
	}
}

// WithLogger overrides the stderr logger.
func WithLogger(logger *log.Logger) ContextOption {
	return func(ctx *Context) {
		ctx.logger = logger
	}
}

// NewContext creates a context.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{logger: defaultLogger}
	for _, o := range opts {
		o(ctx)
	}
	debug, err := env.IsDebugMode()
	if err != nil {
		ctx.Warnf("Failed to parse debug mode: %v", err)
	}
	ctx.debug = debug
	return ctx
}

// BuildpackID returns the buildpack id.
func (ctx *Context) BuildpackID() string {
	return ctx.info.ID
}

// BuildpackVersion returns the buildpack version.
func (ctx *Context) BuildpackVersion() string {
	return ctx.info.Version
}

// ApplicationRoot returns the root folder of the application code.
func (ctx *Context) ApplicationRoot() string {
	return ctx.applicationRoot
}

// Bindings returns the service bindings provided by the platform.
func (ctx *Context) Bindings() libcnb.Bindings {
	return ctx.bindings
}

// Debug returns whether debug mode is enabled.
func (ctx *Context) Debug() bool {
	return ctx.debug
}

// Processes returns the launch processes added so far.
func (ctx *Context) Processes() []libcnb.Process {
	return ctx.processes
}

// AddWebProcess adds the given command as the web start process, overwriting any previous web start process.
func (ctx *Context) AddWebProcess(cmd []string) {
	current := ctx.processes
	ctx.processes = nil
	for _, p := range current {
		if p.Type == "web" {
			ctx.Warnf("Overwriting existing web process %q.", p.Command)
			continue
		}
		ctx.processes = append(ctx.processes, p)
	}
	ctx.processes = append(ctx.processes, libcnb.Process{
		Type:    "web",
		Command: cmd,
		Default: true,
	})
}

// Main is the main entrypoint to a buildpack's detect and build functions.
func Main(d DetectFn, b BuildFn) {
	libcnb.BuildpackMain(detectFunc(d), buildFunc(b))
}

func detectFunc(d DetectFn) libcnb.DetectFunc {
	return func(dc libcnb.DetectContext) (libcnb.DetectResult, error) {
		ctx := NewContext(
			WithApplicationRoot(dc.ApplicationPath),
			WithBuildpackInfo(dc.Buildpack.Info),
			WithBindings(dc.Platform.Bindings),
		)
		result, err := d(ctx)
		if err != nil {
			ctx.reportFailure(err)
			return libcnb.DetectResult{}, err
		}
		ctx.Logf(result.Reason())
		return result.Result(), nil
	}
}

func buildFunc(b BuildFn) libcnb.BuildFunc {
	return func(bc libcnb.BuildContext) (libcnb.BuildResult, error) {
		ctx := NewContext(
			WithApplicationRoot(bc.ApplicationPath),
			WithBuildpackInfo(bc.Buildpack.Info),
			WithBindings(bc.Platform.Bindings),
		)
		ctx.Logf("======== %s@%s ========", ctx.BuildpackID(), ctx.BuildpackVersion())
		if err := b(ctx); err != nil {
			ctx.reportFailure(err)
			return libcnb.BuildResult{}, err
		}
		return libcnb.BuildResult{Processes: ctx.processes}, nil
	}
}
