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

// Package env specifies environment variables used to configure container behavior.
package env

import (
	"fmt"
	"os"
	"strconv"
)

const (
	// VCAPServices holds the Cloud Foundry service bindings as JSON, keyed by service label.
	VCAPServices = "VCAP_SERVICES"

	// JavaHome is the location of the installed JRE, as exported by the JRE installation step.
	JavaHome = "JAVA_HOME"

	// DebugMode enables more verbose logging.
	// Example: `true`, `True`, `1` will enable debug logging.
	DebugMode = "JBP_DEBUG"

	// StrictServiceBinding turns an ambiguous database binding (two or more matching
	// services) into a build failure instead of skipping the binding.
	StrictServiceBinding = "JBP_STRICT_SERVICE_BINDING"

	// StructuredLogging switches failure output to single-line JSON entries.
	StructuredLogging = "JBP_ENABLE_STRUCTURED_LOGGING"
)

// IsDebugMode returns true if debug logging is enabled.
func IsDebugMode() (bool, error) {
	return IsPresentAndTrue(DebugMode)
}

// IsStrictServiceBinding returns true if ambiguous service bindings must fail the build.
func IsStrictServiceBinding() (bool, error) {
	return IsPresentAndTrue(StrictServiceBinding)
}

// IsPresentAndTrue returns true if the environment variable evaluates to True.
func IsPresentAndTrue(varName string) (bool, error) {
	varValue, present := os.LookupEnv(varName)
	if !present {
		return false, nil
	}

	parsed, err := strconv.ParseBool(varValue)
	if err != nil {
		return false, fmt.Errorf("parsing %s: %v", varName, err)
	}

	return parsed, nil
}
