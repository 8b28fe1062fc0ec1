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

// Package container detects, prepares and launches applications started by a script in bin/.
package container

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/javabuildpack/containers/pkg/buildererror"
)

var (
	acronymBoundary = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Kind describes one application shape as data. A kind with a property prefix is
// specialized: its release adds platform networking properties under that prefix
// and, when DatabasePattern is set, binds one relational database service.
type Kind struct {
	Name            string `toml:"name"`
	Script          string `toml:"script"`
	PropertyPrefix  string `toml:"property_prefix"`
	DatabasePattern string `toml:"database_pattern"`
}

var (
	// Standalone launches bin/standalone.sh as is.
	Standalone = Kind{
		Name:   "Standalone",
		Script: "standalone.sh",
	}

	// Artifactory launches bin/artifactory.sh on an application server bound to the
	// platform port and, optionally, to a PostgreSQL service.
	Artifactory = Kind{
		Name:            "Artifactory",
		Script:          "artifactory.sh",
		PropertyPrefix:  "jboss",
		DatabasePattern: "postgresql",
	}

	// Builtin lists the kinds shipped with the buildpack.
	Builtin = []Kind{Standalone, Artifactory}
)

// ID returns the identifier reported when the kind is detected: the dash-cased name.
func (k Kind) ID() string {
	return dashCase(k.Name)
}

// Specialized reports whether releases of this kind inject networking properties.
func (k Kind) Specialized() bool {
	return k.PropertyPrefix != ""
}

// property returns name under the kind's property prefix.
func (k Kind) property(name string) string {
	return k.PropertyPrefix + "." + name
}

func (k Kind) validate() error {
	switch {
	case k.Name == "":
		return fmt.Errorf("name is required")
	case k.Script == "":
		return fmt.Errorf("script is required")
	case filepath.Base(k.Script) != k.Script:
		return fmt.Errorf("script %q must be a file name in bin/", k.Script)
	case k.DatabasePattern != "" && k.PropertyPrefix == "":
		return fmt.Errorf("database_pattern requires property_prefix")
	}
	if _, err := regexp.Compile(k.DatabasePattern); err != nil {
		return fmt.Errorf("database_pattern: %v", err)
	}
	return nil
}

type kindsFile struct {
	Containers []Kind `toml:"containers"`
}

// LoadKinds reads container kinds from a TOML file with one [[containers]] table per kind.
func LoadKinds(path string) ([]Kind, error) {
	var f kindsFile
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, buildererror.Wrapf(buildererror.StatusInvalidArgument, err, "decoding %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, buildererror.Errorf(buildererror.StatusInvalidArgument, "%s: unknown keys %v", path, undecoded)
	}
	seen := map[string]bool{}
	for i, k := range f.Containers {
		if err := k.validate(); err != nil {
			return nil, buildererror.Errorf(buildererror.StatusInvalidArgument, "%s: container %d: %v", path, i, err)
		}
		if seen[k.ID()] {
			return nil, buildererror.Errorf(buildererror.StatusInvalidArgument, "%s: duplicate container %q", path, k.Name)
		}
		seen[k.ID()] = true
	}
	return f.Containers, nil
}

// Lookup finds a kind by name or identifier, ignoring case.
func Lookup(kinds []Kind, name string) (Kind, bool) {
	for _, k := range kinds {
		if strings.EqualFold(k.Name, name) || k.ID() == strings.ToLower(name) {
			return k, true
		}
	}
	return Kind{}, false
}

func dashCase(s string) string {
	s = acronymBoundary.ReplaceAllString(s, "${1}-${2}")
	s = wordBoundary.ReplaceAllString(s, "${1}-${2}")
	return strings.ToLower(strings.ReplaceAll(s, "_", "-"))
}
