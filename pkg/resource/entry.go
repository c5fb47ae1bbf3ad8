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

import "gitlab.com/tozd/go/errors"

// 📄 EntryType says whether a resource is a single file or a directory of resources
type EntryType string

const (
	File      EntryType = "file"
	Directory EntryType = "directory"
)

// ParseEntryType accepts "file" or "directory"
func ParseEntryType(s string) (EntryType, error) {
	switch EntryType(s) {
	case File, Directory:
		return EntryType(s), nil
	default:
		return "", errors.Errorf("invalid entry type %q (expected file or directory)", s)
	}
}
