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
	"fmt"
	"os"

	"github.com/javabuildpack/containers/pkg/buildererror"
	"github.com/javabuildpack/containers/pkg/droplet"
	"github.com/javabuildpack/containers/pkg/env"
	gcp "github.com/javabuildpack/containers/pkg/gcpbuildpack"
	"github.com/javabuildpack/containers/pkg/services"
)

// DetectFn returns a buildpack detect function for kind.
func DetectFn(kind Kind) gcp.DetectFn {
	return func(ctx *gcp.Context) (gcp.DetectResult, error) {
		c := New(ctx, kind)
		if _, ok, err := c.Detect(); err != nil {
			return nil, err
		} else if !ok {
			return gcp.OptOutFileNotFound(c.Script().RelativePath()), nil
		}
		return gcp.OptInFileFound(c.Script().RelativePath()), nil
	}
}

// BuildFn returns a buildpack build function for kind. It runs compile and release
// and registers the launch command as the web process.
func BuildFn(kind Kind) gcp.BuildFn {
	return func(ctx *gcp.Context) error {
		ss, err := ResolveServices(ctx)
		if err != nil {
			return err
		}
		strict, err := env.IsStrictServiceBinding()
		if err != nil {
			return buildererror.Errorf(buildererror.StatusInvalidArgument, "%v", err)
		}
		c := New(ctx, kind, WithServices(ss), WithStrictBindings(strict))
		id, ok, err := c.Detect()
		if err != nil {
			return err
		}
		if !ok {
			return buildererror.Errorf(buildererror.StatusFailedPrecondition, "%s not found", c.Script().RelativePath())
		}
		if err := c.Compile(); err != nil {
			return fmt.Errorf("compiling %s: %w", id, err)
		}
		d := droplet.New(ctx.ApplicationRoot()).WithJavaHome(os.Getenv(env.JavaHome))
		cmd, err := c.Release(d)
		if err != nil {
			return fmt.Errorf("releasing %s: %w", id, err)
		}
		ctx.Logf("Using %s as the web process entrypoint", c.Script().RelativePath())
		ctx.AddWebProcess([]string{"bash", "-c", cmd})
		return nil
	}
}

// ResolveServices returns the platform bindings followed by the Cloud Foundry services in VCAP_SERVICES.
func ResolveServices(ctx *gcp.Context) (services.Services, error) {
	ss := services.FromBindings(ctx.Bindings())
	vcap, err := services.FromEnvironment()
	if err != nil {
		return nil, err
	}
	return append(ss, vcap...), nil
}
