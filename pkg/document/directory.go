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
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/walteh/rebind/pkg/resource"
	"gitlab.com/tozd/go/errors"
)

// 📚 Directory is the table of open documents and the windows showing them.
//
// All access is serialized behind one mutex. Identity changes only happen through
// Rebind, which keeps at most one document bound to any name.
type Directory struct {
	mu      sync.Mutex
	docs    map[uuid.UUID]*Document
	byName  map[string]uuid.UUID
	windows map[uuid.UUID]uuid.UUID // window -> document
	order   []uuid.UUID             // window creation order
}

// 🏭 NewDirectory creates an empty directory
func NewDirectory() *Directory {
	return &Directory{
		docs:    make(map[uuid.UUID]*Document),
		byName:  make(map[string]uuid.UUID),
		windows: make(map[uuid.UUID]uuid.UUID),
	}
}

// OpenOptions describes a document being opened by the editor
type OpenOptions struct {
	Kind   Kind
	Loaded bool
	Dirty  bool
	Listed bool
	Lines  []string
}

// 📂 Open registers a document under name. An empty name opens an unnamed document.
func (d *Directory) Open(name string, opts OpenOptions) (Document, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if name != "" {
		if _, ok := d.byName[name]; ok {
			return Document{}, errors.Errorf("opening %s: %w", name, ErrAlreadyOpen)
		}
	}

	doc := &Document{
		ID:     uuid.New(),
		Name:   name,
		Kind:   opts.Kind,
		Loaded: opts.Loaded || opts.Dirty,
		Dirty:  opts.Dirty,
		Listed: opts.Listed,
		Lines:  slices.Clone(opts.Lines),
	}
	d.docs[doc.ID] = doc
	if name != "" {
		d.byName[name] = doc.ID
	}
	return doc.clone(), nil
}

// 🗑️ Close drops a document and every window showing it
func (d *Directory) Close(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.docs[id]
	if !ok {
		return errors.Errorf("closing document %s: %w", id, ErrNotFound)
	}
	d.remove(doc)
	for _, win := range d.attachments(id) {
		delete(d.windows, win)
		d.order = slices.DeleteFunc(d.order, func(w uuid.UUID) bool { return w == win })
	}
	return nil
}

// ✏️ Edit replaces a document's buffered lines and marks it dirty
func (d *Directory) Edit(id uuid.UUID, lines []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.docs[id]
	if !ok {
		return errors.Errorf("editing document %s: %w", id, ErrNotFound)
	}
	doc.Lines = slices.Clone(lines)
	doc.Loaded = true
	doc.Dirty = true
	return nil
}

// Get returns a snapshot of the document
func (d *Directory) Get(id uuid.UUID) (Document, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.docs[id]
	if !ok {
		return Document{}, false
	}
	return doc.clone(), true
}

// 🔍 FindByName returns the document bound to name
func (d *Directory) FindByName(name string) (Document, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id, ok := d.byName[name]
	if !ok {
		return Document{}, false
	}
	return d.docs[id].clone(), true
}

// 🔍 FindByIdentity returns the document bound to id
func (d *Directory) FindByIdentity(id resource.Identity) (Document, bool) {
	return d.FindByName(id.String())
}

// 🌳 FindDescendants returns every document whose identity lies inside dir.
// The listing of dir itself is not a descendant.
func (d *Directory) FindDescendants(dir resource.Identity) []Document {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []Document
	for _, doc := range d.docs {
		id, ok := doc.Identity()
		if !ok {
			continue
		}
		if dir.Contains(id) {
			out = append(out, doc.clone())
		}
	}
	sortByName(out)
	return out
}

// 📋 List returns a snapshot of every open document, sorted by name
func (d *Directory) List() []Document {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Document, 0, len(d.docs))
	for _, doc := range d.docs {
		out = append(out, doc.clone())
	}
	sortByName(out)
	return out
}

// 🪟 OpenWindow creates a window showing doc
func (d *Directory) OpenWindow(doc uuid.UUID) (uuid.UUID, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.docs[doc]; !ok {
		return uuid.Nil, errors.Errorf("opening window for %s: %w", doc, ErrNotFound)
	}
	win := uuid.New()
	d.windows[win] = doc
	d.order = append(d.order, win)
	return win, nil
}

// SetWindowDocument shows doc in win
func (d *Directory) SetWindowDocument(win, doc uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.windows[win]; !ok {
		return errors.Errorf("window %s: %w", win, ErrNotFound)
	}
	if _, ok := d.docs[doc]; !ok {
		return errors.Errorf("document %s: %w", doc, ErrNotFound)
	}
	d.windows[win] = doc
	return nil
}

// WindowDocument returns the document shown in win
func (d *Directory) WindowDocument(win uuid.UUID) (uuid.UUID, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	doc, ok := d.windows[win]
	return doc, ok
}

// Windows returns every window in creation order
func (d *Directory) Windows() []Window {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]Window, 0, len(d.order))
	for _, win := range d.order {
		out = append(out, Window{ID: win, Document: d.windows[win]})
	}
	return out
}

// Attachments returns the windows showing doc, in creation order
func (d *Directory) Attachments(doc uuid.UUID) []uuid.UUID {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.attachments(doc)
}

func (d *Directory) attachments(doc uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	for _, win := range d.order {
		if d.windows[win] == doc {
			out = append(out, win)
		}
	}
	return out
}

func (d *Directory) remove(doc *Document) {
	delete(d.docs, doc.ID)
	if doc.Name != "" && d.byName[doc.Name] == doc.ID {
		delete(d.byName, doc.Name)
	}
}

func sortByName(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Name == docs[j].Name {
			return strings.Compare(docs[i].ID.String(), docs[j].ID.String()) < 0
		}
		return docs[i].Name < docs[j].Name
	})
}
