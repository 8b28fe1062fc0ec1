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

package droplet

import (
	"sort"

	"github.com/javabuildpack/containers/pkg/buildererror"
	"github.com/joho/godotenv"
)

// WithEnvironmentFile returns a copy of d with the assignments of a dotenv file added.
// Dotenv files carry no order, so variables are added sorted by name.
func (d Droplet) WithEnvironmentFile(path string) (Droplet, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return d, buildererror.Wrapf(buildererror.StatusInvalidArgument, err, "reading environment file %s", path)
	}
	names := make([]string, 0, len(vars))
	for n := range vars {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		d = d.WithEnvironmentVariable(n, vars[n])
	}
	return d, nil
}
