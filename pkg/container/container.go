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
	"sync"

	"github.com/javabuildpack/containers/pkg/buildererror"
	"github.com/javabuildpack/containers/pkg/droplet"
	gcp "github.com/javabuildpack/containers/pkg/gcpbuildpack"
	"github.com/javabuildpack/containers/pkg/launch"
	"github.com/javabuildpack/containers/pkg/services"
)

type state int

const (
	unstarted state = iota
	detected
	compiled
	released
)

func (s state) String() string {
	return [...]string{"unstarted", "detected", "compiled", "released"}[s]
}

// Container runs the detect, compile and release phases of one kind for one application.
// Phases advance in that order; Detect may be repeated at any point.
type Container struct {
	ctx      *gcp.Context
	kind     Kind
	script   launch.Script
	services services.Services
	strict   bool

	mu    sync.Mutex
	state state
}

// Option configures a Container.
type Option func(c *Container)

// WithServices sets the services bound to the application.
func WithServices(ss services.Services) Option {
	return func(c *Container) {
		c.services = ss
	}
}

// WithStrictBindings makes an ambiguous database binding fail the release.
func WithStrictBindings(strict bool) Option {
	return func(c *Container) {
		c.strict = strict
	}
}

// New returns a container of the given kind for the application at ctx.ApplicationRoot().
func New(ctx *gcp.Context, kind Kind, opts ...Option) *Container {
	c := &Container{
		ctx:    ctx,
		kind:   kind,
		script: launch.NewScript(ctx.ApplicationRoot(), kind.Script),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Kind returns the container kind.
func (c *Container) Kind() Kind {
	return c.kind
}

// Script returns the launch script the container looks for.
func (c *Container) Script() launch.Script {
	return c.script
}

// Detect returns the container identifier if the launch script exists as a regular file.
// It does not touch the filesystem beyond that single lookup.
func (c *Container) Detect() (string, bool, error) {
	found, err := c.ctx.IsRegularFile(c.script.Path())
	if err != nil {
		return "", false, err
	}
	if !found {
		return "", false, nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == unstarted {
		c.state = detected
	}
	return c.kind.ID(), true, nil
}

// Compile makes the launch script executable. Repeating it before Release is harmless.
func (c *Container) Compile() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != detected && c.state != compiled {
		return c.outOfOrder("compile")
	}
	path := c.script.Path()
	found, err := c.ctx.IsRegularFile(path)
	if err != nil {
		return err
	}
	if !found {
		return buildererror.Wrapf(buildererror.StatusInternal, os.ErrNotExist, "launch script %s is no longer a regular file", c.script.RelativePath())
	}
	if err := c.ctx.Chmod(path, launch.ExecutableMode); err != nil {
		return err
	}
	c.state = compiled
	return nil
}

// Resume marks a detected container as compiled by an earlier process, leaving the
// launch script's mode untouched. The script must still be a regular file.
func (c *Container) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != detected && c.state != compiled {
		return c.outOfOrder("resume")
	}
	found, err := c.ctx.IsRegularFile(c.script.Path())
	if err != nil {
		return err
	}
	if !found {
		return buildererror.Wrapf(buildererror.StatusInternal, os.ErrNotExist, "launch script %s is no longer a regular file", c.script.RelativePath())
	}
	c.state = compiled
	return nil
}

// Release derives the runtime configuration from d and returns the launch command.
func (c *Container) Release(d droplet.Droplet) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != compiled {
		return "", c.outOfOrder("release")
	}
	d, err := configure(c.ctx, c.kind, d, c.services, c.strict)
	if err != nil {
		return "", err
	}
	cmd, err := d.Command(c.script)
	if err != nil {
		return "", err
	}
	c.state = released
	return cmd.String(), nil
}

func (c *Container) outOfOrder(phase string) error {
	return buildererror.Errorf(buildererror.StatusFailedPrecondition, "%s container: cannot %s in state %s", c.kind.ID(), phase, c.state)
}
