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
	"encoding/json"
	"os"
	"sort"

	"github.com/javabuildpack/containers/pkg/buildererror"
	"github.com/javabuildpack/containers/pkg/env"
)

// FromVCAPServices parses Cloud Foundry VCAP_SERVICES content.
// Labels are visited in sorted order so the result does not depend on JSON key order.
func FromVCAPServices(content []byte) (Services, error) {
	if len(content) == 0 {
		return nil, nil
	}
	var byLabel map[string][]Service
	if err := json.Unmarshal(content, &byLabel); err != nil {
		return nil, buildererror.Wrapf(buildererror.StatusInvalidArgument, err, "parsing %s", env.VCAPServices)
	}
	labels := make([]string, 0, len(byLabel))
	for l := range byLabel {
		labels = append(labels, l)
	}
	sort.Strings(labels)

	var ss Services
	for _, l := range labels {
		for _, s := range byLabel[l] {
			if s.Label == "" {
				s.Label = l
			}
			ss = append(ss, s)
		}
	}
	return ss, nil
}

// FromEnvironment parses the services in the VCAP_SERVICES environment variable, if set.
func FromEnvironment() (Services, error) {
	return FromVCAPServices([]byte(os.Getenv(env.VCAPServices)))
}
