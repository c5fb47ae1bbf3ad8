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

package document

import (
	"slices"

	"github.com/google/uuid"
	"github.com/walteh/rebind/pkg/resource"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNotFound indicates the document or window does not exist
	ErrNotFound = errors.Base("not found")

	// ErrAlreadyOpen indicates another document is already bound to the name
	ErrAlreadyOpen = errors.Base("already open")

	// ErrIdentityCollision indicates a rebind would overwrite unsaved content of another document
	ErrIdentityCollision = errors.Base("identity collision")

	// ErrRenameFailed indicates the new name is claimed by a document that cannot be merged
	ErrRenameFailed = errors.Base("rename failed")
)

// 📄 Kind distinguishes ordinary documents from virtual listings
type Kind int

const (
	// Ordinary documents hold the content of one resource
	Ordinary Kind = iota
	// Listing documents render the entries of a directory-like resource
	Listing
)

// String returns a string representation of Kind
func (k Kind) String() string {
	switch k {
	case Ordinary:
		return "ordinary"
	case Listing:
		return "listing"
	default:
		return "unknown"
	}
}

// 📄 Document is a snapshot of an open editor document.
// Mutations go through the Directory.
type Document struct {
	ID     uuid.UUID
	Name   string
	Kind   Kind
	Loaded bool
	Dirty  bool
	Listed bool
	Lines  []string
}

// Identity parses the document name. The second return is false for bare local paths.
func (d Document) Identity() (resource.Identity, bool) {
	return resource.Parse(d.Name)
}

func (d *Document) clone() Document {
	c := *d
	c.Lines = slices.Clone(d.Lines)
	return c
}

// 🪟 Window shows exactly one document
type Window struct {
	ID       uuid.UUID
	Document uuid.UUID
}

// 🔄 Resolution reports how a rebind was applied
type Resolution int

const (
	// Unchanged means the document already had the requested name
	Unchanged Resolution = iota
	// Renamed means the document was renamed in place
	Renamed
	// Merged means the document was folded into the one already bound to the name
	Merged
)

// String returns a string representation of Resolution
func (r Resolution) String() string {
	switch r {
	case Unchanged:
		return "unchanged"
	case Renamed:
		return "renamed"
	case Merged:
		return "merged"
	default:
		return "unknown"
	}
}
