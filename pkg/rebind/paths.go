// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rebind

import (
	"os"
	"path/filepath"
)

// 🗺️ PathResolver turns bare document names into absolute local paths
type PathResolver interface {
	// IsAbs reports whether path is already absolute
	IsAbs(path string) bool
	// Canonicalize returns the absolute, cleaned form of path
	Canonicalize(path string) string
}

// LocalPaths resolves relative names against Cwd, or the process working directory
// when Cwd is empty. Results always use forward slashes.
type LocalPaths struct {
	Cwd string
}

var _ PathResolver = LocalPaths{}

func (p LocalPaths) IsAbs(path string) bool {
	return filepath.IsAbs(path)
}

func (p LocalPaths) Canonicalize(path string) string {
	if !filepath.IsAbs(path) {
		cwd := p.Cwd
		if cwd == "" {
			// best effort, an unresolvable cwd leaves the path relative
			cwd, _ = os.Getwd()
		}
		path = filepath.Join(cwd, path)
	}
	return filepath.ToSlash(filepath.Clean(path))
}
