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

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/javabuildpack/containers/pkg/buildererror"
	"github.com/javabuildpack/containers/pkg/container"
	"github.com/javabuildpack/containers/pkg/droplet"
	"github.com/javabuildpack/containers/pkg/env"
	gcp "github.com/javabuildpack/containers/pkg/gcpbuildpack"
	"github.com/javabuildpack/containers/pkg/services"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const defaultJavaHome = ".java-buildpack/open_jdk_jre"

// errNotDetected makes detect exit non-zero without printing a failure.
var errNotDetected = errors.New("container not detected")

type options struct {
	container string
	config    string
	javaHome  string
	envFile   string
	strict    bool
}

// releaseInfo is the document Cloud Foundry reads from bin/release.
type releaseInfo struct {
	Addons              []string          `yaml:"addons"`
	ConfigVars          map[string]string `yaml:"config_vars"`
	DefaultProcessTypes map[string]string `yaml:"default_process_types"`
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "containers",
		Short:         "Detect, compile and release a standalone Java application",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	f := root.PersistentFlags()
	f.StringVar(&opts.container, "container", container.Standalone.Name, "container kind to run")
	f.StringVar(&opts.config, "config", "", "TOML file declaring additional container kinds")
	f.StringVar(&opts.javaHome, "java-home", defaultJavaHome, "Java home, relative to the application root unless absolute")
	f.StringVar(&opts.envFile, "env-file", "", "dotenv file with environment variables for the launch command")
	f.BoolVar(&opts.strict, "strict-bindings", false, "fail when more than one database service matches")

	logger := log.New(stderr, "", 0)
	root.AddCommand(
		&cobra.Command{
			Use:   "detect <build-dir>",
			Short: "Print the container id if the application matches",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := opts.newContainer(cmd, logger, args[0])
				if err != nil {
					return err
				}
				id, ok, err := c.Detect()
				if err != nil {
					return err
				}
				if !ok {
					return errNotDetected
				}
				fmt.Fprintln(stdout, id)
				return nil
			},
		},
		&cobra.Command{
			Use:   "compile <build-dir> [cache-dir]",
			Short: "Make the launch script executable",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := opts.newContainer(cmd, logger, args[0])
				if err != nil {
					return err
				}
				if err := requireDetected(c); err != nil {
					return err
				}
				return c.Compile()
			},
		},
		&cobra.Command{
			Use:   "release <build-dir>",
			Short: "Print the release document with the web process command",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := opts.newContainer(cmd, logger, args[0])
				if err != nil {
					return err
				}
				if err := requireDetected(c); err != nil {
					return err
				}
				if err := c.Resume(); err != nil {
					return err
				}
				d, err := opts.droplet(args[0])
				if err != nil {
					return err
				}
				command, err := c.Release(d)
				if err != nil {
					return err
				}
				out, err := yaml.Marshal(releaseInfo{
					Addons:              []string{},
					ConfigVars:          map[string]string{},
					DefaultProcessTypes: map[string]string{"web": command},
				})
				if err != nil {
					return buildererror.InternalErrorf("marshalling release: %v", err)
				}
				_, err = stdout.Write(out)
				return err
			},
		},
	)
	return root
}

// requireDetected reruns detection, since every phase is a separate process.
func requireDetected(c *container.Container) error {
	_, ok, err := c.Detect()
	if err != nil {
		return err
	}
	if !ok {
		return buildererror.Errorf(buildererror.StatusFailedPrecondition, "%s not found", c.Script().RelativePath())
	}
	return nil
}

func (o *options) newContainer(cmd *cobra.Command, logger *log.Logger, appDir string) (*container.Container, error) {
	root, err := filepath.Abs(appDir)
	if err != nil {
		return nil, buildererror.Wrapf(buildererror.StatusInvalidArgument, err, "resolving %s", appDir)
	}
	kinds := container.Builtin
	if o.config != "" {
		extra, err := container.LoadKinds(o.config)
		if err != nil {
			return nil, err
		}
		kinds = append(append([]container.Kind{}, container.Builtin...), extra...)
	}
	kind, ok := container.Lookup(kinds, o.container)
	if !ok {
		return nil, buildererror.Errorf(buildererror.StatusInvalidArgument, "unknown container %q", o.container)
	}

	strict := o.strict
	if !cmd.Flags().Changed("strict-bindings") {
		if strict, err = env.IsStrictServiceBinding(); err != nil {
			return nil, buildererror.Errorf(buildererror.StatusInvalidArgument, "%v", err)
		}
	}
	ss, err := services.FromEnvironment()
	if err != nil {
		return nil, err
	}

	ctx := gcp.NewContext(gcp.WithApplicationRoot(root), gcp.WithLogger(logger))
	return container.New(ctx, kind, container.WithServices(ss), container.WithStrictBindings(strict)), nil
}

func (o *options) droplet(appDir string) (droplet.Droplet, error) {
	root, err := filepath.Abs(appDir)
	if err != nil {
		return droplet.Droplet{}, buildererror.Wrapf(buildererror.StatusInvalidArgument, err, "resolving %s", appDir)
	}
	d := droplet.New(root).WithJavaHome(o.javaHome)
	if o.envFile == "" {
		return d, nil
	}
	return d.WithEnvironmentFile(o.envFile)
}
