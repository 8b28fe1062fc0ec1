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

package launch

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/javabuildpack/containers/pkg/buildererror"
)

const (
	// BinDir is the application directory holding launch scripts.
	BinDir = "bin"
	// ExecutableMode is owner read/write/execute, group and other read/execute.
	ExecutableMode = 0755
	// WorkingDirectory is expanded by the launching shell to the application root.
	WorkingDirectory = "$PWD"
)

// Script is a launch script at bin/<name> below an application root.
type Script struct {
	root string
	name string
}

// NewScript returns the launch script called name for the application at root.
func NewScript(root, name string) Script {
	return Script{root: root, name: name}
}

// Name returns the script file name.
func (s Script) Name() string {
	return s.name
}

// RelativePath returns the script path relative to the application root.
func (s Script) RelativePath() string {
	return path.Join(BinDir, s.name)
}

// Path returns the script path on the build filesystem.
func (s Script) Path() string {
	return filepath.Join(s.root, BinDir, s.name)
}

// QualifyPath rewrites p relative to the application root as $PWD/<relative path>.
// Relative inputs are taken relative to root; paths outside root stay absolute.
func QualifyPath(p, root string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(root, p)
	}
	rel, err := filepath.Rel(root, p)
	if err != nil {
		return "", buildererror.Wrapf(buildererror.StatusInternal, err, "qualifying %s relative to %s", p, root)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Clean(p), nil
	}
	if rel == "." {
		return WorkingDirectory, nil
	}
	return WorkingDirectory + "/" + filepath.ToSlash(rel), nil
}
