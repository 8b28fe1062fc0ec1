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

// Package droplet holds the runtime configuration accumulated while releasing an application.
//
// A Droplet is a value: every With* method returns an updated copy and leaves the
// receiver untouched, so a release step is a function from one Droplet to the next.
package droplet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/javabuildpack/containers/pkg/env"
	"github.com/javabuildpack/containers/pkg/launch"
)

// JavaOpts is the environment variable the launch scripts read JVM options from.
const JavaOpts = "JAVA_OPTS"

var (
	literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", "$", `\$`)
	expandEscaper  = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`")

	bareWord = regexp.MustCompile(`^[A-Za-z0-9_./:,+=@%-]*$`)
)

// Variable is a named value: an environment variable or a system property.
type Variable struct {
	Name   string
	Value  string
	// Expand leaves shell parameters in Value, such as $PORT, to be expanded at launch.
	Expand bool
}

// quoted renders the value as one double-quoted shell word.
func (v Variable) quoted() string {
	if v.Expand {
		return expandEscaper.Replace(v.Value)
	}
	return literalEscaper.Replace(v.Value)
}

// ordered is a set of variables with unique names kept in insertion order.
type ordered []Variable

// with returns a copy holding v. Overwriting keeps the original position.
func (o ordered) with(v Variable) ordered {
	c := make(ordered, len(o), len(o)+1)
	copy(c, o)
	for i := range c {
		if c[i].Name == v.Name {
			c[i] = v
			return c
		}
	}
	return append(c, v)
}

func (o ordered) lookup(name string) (string, bool) {
	for _, v := range o {
		if v.Name == name {
			return v.Value, true
		}
	}
	return "", false
}

// Droplet is the runtime configuration of a staged application.
type Droplet struct {
	root        string
	javaHome    string
	environment ordered
	properties  ordered
}

// New returns an empty droplet for the application at root.
func New(root string) Droplet {
	return Droplet{root: root}
}

// Root returns the application root.
func (d Droplet) Root() string {
	return d.root
}

// JavaHome returns the runtime home path, empty if unknown.
func (d Droplet) JavaHome() string {
	return d.javaHome
}

// WithJavaHome returns a copy of d with the runtime home set to path.
func (d Droplet) WithJavaHome(path string) Droplet {
	d.javaHome = path
	return d
}

// WithEnvironmentVariable returns a copy of d with name set to value.
func (d Droplet) WithEnvironmentVariable(name, value string) Droplet {
	d.environment = d.environment.with(Variable{Name: name, Value: value})
	return d
}

// WithSystemProperty returns a copy of d with the system property name set to value.
// The value reaches the JVM verbatim.
func (d Droplet) WithSystemProperty(name, value string) Droplet {
	d.properties = d.properties.with(Variable{Name: name, Value: value})
	return d
}

// WithExpandedSystemProperty is WithSystemProperty for values holding shell parameters,
// such as $PORT, that the launching shell expands.
func (d Droplet) WithExpandedSystemProperty(name, value string) Droplet {
	d.properties = d.properties.with(Variable{Name: name, Value: value, Expand: true})
	return d
}

// EnvironmentVariables returns the environment variables in insertion order.
func (d Droplet) EnvironmentVariables() []Variable {
	return append([]Variable(nil), d.environment...)
}

// SystemProperties returns the system properties in insertion order.
func (d Droplet) SystemProperties() []Variable {
	return append([]Variable(nil), d.properties...)
}

// SystemProperty returns the value of a system property.
func (d Droplet) SystemProperty(name string) (string, bool) {
	return d.properties.lookup(name)
}

// EnvironmentFragments renders each environment variable as NAME=value, double-quoting
// values that are not a plain shell word.
func (d Droplet) EnvironmentFragments() []launch.Fragment {
	fs := make([]launch.Fragment, 0, len(d.environment))
	for _, v := range d.environment {
		if bareWord.MatchString(v.Value) {
			fs = append(fs, launch.Some(v.Name+"="+v.Value))
		} else {
			fs = append(fs, launch.Some(fmt.Sprintf(`%s="%s"`, v.Name, v.quoted())))
		}
	}
	return fs
}

// JavaHomeFragment renders the runtime home as a JAVA_HOME assignment qualified against the root.
func (d Droplet) JavaHomeFragment() (launch.Fragment, error) {
	if d.javaHome == "" {
		return launch.None(), nil
	}
	p, err := launch.QualifyPath(d.javaHome, d.root)
	if err != nil {
		return launch.None(), err
	}
	return launch.Some(env.JavaHome + "=" + p), nil
}

// JavaOptsFragment renders the system properties as a single double-quoted JAVA_OPTS
// assignment. Only values set with WithExpandedSystemProperty are subject to expansion.
func (d Droplet) JavaOptsFragment() launch.Fragment {
	if len(d.properties) == 0 {
		return launch.None()
	}
	flags := make([]string, 0, len(d.properties))
	for _, p := range d.properties {
		flags = append(flags, fmt.Sprintf("-D%s=%s", p.Name, p.quoted()))
	}
	return launch.Some(fmt.Sprintf(`%s="%s"`, JavaOpts, strings.Join(flags, " ")))
}

// Command assembles the launch command for script from the droplet.
// The script path is qualified against the droplet root.
func (d Droplet) Command(script launch.Script) (launch.Command, error) {
	home, err := d.JavaHomeFragment()
	if err != nil {
		return launch.Command{}, err
	}
	path, err := launch.QualifyPath(script.Path(), d.root)
	if err != nil {
		return launch.Command{}, err
	}
	return launch.Command{
		EnvironmentVariables: d.EnvironmentFragments(),
		JavaHome:             home,
		JavaOpts:             d.JavaOptsFragment(),
		Script:               launch.Some(path),
	}, nil
}
