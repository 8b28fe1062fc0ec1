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

package gcpbuildpack

import (
	"os"
	"path/filepath"

	"github.com/javabuildpack/containers/pkg/buildererror"
)

// FileExists returns true if a file exists at the path joined by elem.
func (ctx *Context) FileExists(elem ...string) (bool, error) {
	path := filepath.Join(elem...)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, buildererror.Wrapf(buildererror.StatusInternal, err, "stat %q", path)
	}
	return true, nil
}

// IsRegularFile returns true if the path joined by elem resolves, following symlinks, to a regular file.
// Directories, sockets and dangling links count as absent.
func (ctx *Context) IsRegularFile(elem ...string) (bool, error) {
	path := filepath.Join(elem...)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	} else if err != nil {
		return false, buildererror.Wrapf(buildererror.StatusInternal, err, "stat %q", path)
	}
	return info.Mode().IsRegular(), nil
}

// Chmod is a pass through for os.Chmod(...) and returns any error with proper user / system attribution.
func (ctx *Context) Chmod(path string, mode os.FileMode) error {
	ctx.Debugf("Setting mode of %q to %#o", path, mode)
	if err := os.Chmod(path, mode); err != nil {
		return buildererror.Wrapf(buildererror.StatusInternal, err, "setting mode of %s to %#o", path, mode)
	}
	return nil
}
