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
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🔄 Rebind binds the document to newName.
//
// When no other document holds newName the document is renamed in place and keeps
// its flags, content and windows. Otherwise the two are merged into the document
// already holding newName:
//   - dirty source, loaded and dirty target: ErrIdentityCollision, nothing changes
//   - dirty source, any other target: the source lines are copied into the target
//   - clean source: the source buffer is discarded
//
// After a merge every window that showed the source shows the target and the source
// is removed. Documents of different kinds never merge (ErrRenameFailed).
func (d *Directory) Rebind(ctx context.Context, id uuid.UUID, newName string) (Resolution, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	logger := zerolog.Ctx(ctx).With().Str("document", id.String()).Str("to", newName).Logger()

	doc, ok := d.docs[id]
	if !ok {
		return Unchanged, errors.Errorf("rebinding document %s: %w", id, ErrNotFound)
	}
	if newName == "" {
		return Unchanged, errors.Errorf("rebinding %s: new name is empty", doc.Name)
	}
	if doc.Name == newName {
		return Unchanged, nil
	}

	err := d.setName(doc, newName)
	if err == nil {
		logger.Debug().Str("from", doc.Name).Msg("renamed document in place")
		return Renamed, nil
	}
	if !errors.Is(err, ErrRenameFailed) {
		return Unchanged, err
	}

	logger.Debug().Err(err).Msg("rename refused, merging into existing document")

	other := d.docs[d.byName[newName]]
	if err := d.merge(doc, other); err != nil {
		return Unchanged, err
	}

	logger.Debug().Str("from", doc.Name).Str("into", other.ID.String()).Msg("merged document")
	return Merged, nil
}

// setName is the rename primitive. It refuses names held by another document.
func (d *Directory) setName(doc *Document, newName string) error {
	if holder, ok := d.byName[newName]; ok && holder != doc.ID {
		return errors.Errorf("%w: %s is held by another document", ErrRenameFailed, newName)
	}
	if doc.Name != "" && d.byName[doc.Name] == doc.ID {
		delete(d.byName, doc.Name)
	}
	doc.Name = newName
	d.byName[newName] = doc.ID
	return nil
}

func (d *Directory) merge(doc, other *Document) error {
	if doc.Kind != other.Kind {
		return errors.Errorf("%w: cannot merge %s %s into %s %s", ErrRenameFailed, doc.Kind, doc.Name, other.Kind, other.Name)
	}

	if doc.Dirty {
		if other.Loaded && other.Dirty {
			return errors.WithDetails(
				errors.Errorf("%w: %s has unsaved changes and %s is already open with unsaved changes", ErrIdentityCollision, doc.Name, other.Name),
				"source", doc.Name,
				"destination", other.Name,
			)
		}
		other.Loaded = true
		other.Lines = slices.Clone(doc.Lines)
		other.Dirty = true
	}

	other.Listed = other.Listed || doc.Listed
	for _, win := range d.attachments(doc.ID) {
		d.windows[win] = other.ID
	}
	d.remove(doc)
	return nil
}
