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

package services

import (
	"github.com/buildpacks/libcnb/v2"
)

// FromBindings converts service bindings mounted by a CNB platform.
// The binding type doubles as the label, and the provider as a tag.
func FromBindings(bindings libcnb.Bindings) Services {
	var ss Services
	for _, b := range bindings {
		s := Service{
			Name:        b.Name,
			Label:       b.Type,
			Credentials: Credentials{},
		}
		if b.Provider != "" {
			s.Tags = []string{b.Provider}
		}
		for k, v := range b.Secret {
			s.Credentials[k] = v
		}
		ss = append(ss, s)
	}
	return ss
}
