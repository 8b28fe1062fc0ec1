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

// Package lib implements the java/standalone buildpack, which launches bin/standalone.sh.
package lib

import (
	"github.com/javabuildpack/containers/pkg/container"
	gcp "github.com/javabuildpack/containers/pkg/gcpbuildpack"
)

// DetectFn is the exported detect function.
func DetectFn(ctx *gcp.Context) (gcp.DetectResult, error) {
	return container.DetectFn(container.Standalone)(ctx)
}

// BuildFn is the exported build function.
func BuildFn(ctx *gcp.Context) error {
	return container.BuildFn(container.Standalone)(ctx)
}
