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

package resource

import "strings"

const (
	// SchemeSeparator splits a resource URL into scheme and path
	SchemeSeparator = "://"

	// Separator is the path separator used for descendant tests
	Separator = "/"
)

// 🔑 Identity names a resource across all adapters.
//
// Two identities are equal iff scheme and path are byte-equal. The path is opaque
// except for prefix comparison.
type Identity struct {
	Scheme string
	Path   string
}

// 🔍 Parse splits url on the first "://".
//
// The second return is false when there is no scheme separator, which means the
// url is a bare local path and should be treated as such by the caller.
func Parse(url string) (Identity, bool) {
	idx := strings.Index(url, SchemeSeparator)
	if idx < 0 {
		return Identity{}, false
	}
	return Identity{
		Scheme: url[:idx],
		Path:   url[idx+len(SchemeSeparator):],
	}, true
}

// 🏗️ New builds an identity from its parts
func New(scheme, path string) Identity {
	return Identity{Scheme: scheme, Path: path}
}

// String builds the scheme://path form
func (id Identity) String() string {
	return id.Scheme + SchemeSeparator + id.Path
}

// IsZero reports whether the identity has no scheme
func (id Identity) IsZero() bool {
	return id.Scheme == ""
}

// 📁 AsDirectory returns the identity with a trailing separator on its path
func (id Identity) AsDirectory() Identity {
	return Identity{Scheme: id.Scheme, Path: AddTrailingSeparator(id.Path)}
}

// WithScheme returns the same path under another scheme
func (id Identity) WithScheme(scheme string) Identity {
	return Identity{Scheme: scheme, Path: id.Path}
}

// 🌳 Contains reports whether other lies lexically inside the directory id.
// A directory does not contain itself.
func (id Identity) Contains(other Identity) bool {
	if id.Scheme != other.Scheme {
		return false
	}
	prefix := AddTrailingSeparator(id.Path)
	return strings.HasPrefix(other.Path, prefix) && other.Path != prefix
}

// ➕ AddTrailingSeparator appends "/" to path unless it already ends with one
func AddTrailingSeparator(path string) string {
	if strings.HasSuffix(path, Separator) {
		return path
	}
	return path + Separator
}

// ✂️ ReplacePrefix swaps the leading prefix of name for replacement.
// The second return is false when name does not start with prefix.
func ReplacePrefix(name, prefix, replacement string) (string, bool) {
	if !strings.HasPrefix(name, prefix) {
		return "", false
	}
	return replacement + name[len(prefix):], true
}
