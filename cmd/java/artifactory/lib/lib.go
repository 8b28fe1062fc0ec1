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

// Package lib implements the java/artifactory buildpack. It launches bin/artifactory.sh
// bound to the platform port and to at most one PostgreSQL service.
package lib

import (
	"github.com/javabuildpack/containers/pkg/container"
	gcp "github.com/javabuildpack/containers/pkg/gcpbuildpack"
)

var (
	detect = container.DetectFn(container.Artifactory)
	build  = container.BuildFn(container.Artifactory)
)

// DetectFn is the exported detect function.
func DetectFn(ctx *gcp.Context) (gcp.DetectResult, error) {
	return detect(ctx)
}

// BuildFn is the exported build function.
func BuildFn(ctx *gcp.Context) error {
	return build(ctx)
}
