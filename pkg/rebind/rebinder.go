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
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/walteh/rebind/pkg/adapter"
	"github.com/walteh/rebind/pkg/document"
	"github.com/walteh/rebind/pkg/notify"
	"github.com/walteh/rebind/pkg/resource"
	"gitlab.com/tozd/go/errors"
)

// 📚 Documents is the part of the document directory the rebinder drives
type Documents interface {
	List() []document.Document
	Get(id uuid.UUID) (document.Document, bool)
	Rebind(ctx context.Context, id uuid.UUID, newName string) (document.Resolution, error)
}

var _ Documents = (*document.Directory)(nil)

// 🔄 Rebinder retargets open documents after a resource was moved
type Rebinder struct {
	docs     Documents
	registry *adapter.Registry
	paths    PathResolver
	notifier notify.Notifier
}

// Option configures a Rebinder
type Option func(*Rebinder)

// WithPathResolver sets how bare relative document names are made absolute
func WithPathResolver(p PathResolver) Option {
	return func(r *Rebinder) {
		r.paths = p
	}
}

// WithNotifier sets where per-document failures are reported
func WithNotifier(n notify.Notifier) Option {
	return func(r *Rebinder) {
		r.notifier = n
	}
}

// 🏭 New creates a rebinder over docs
func New(docs Documents, registry *adapter.Registry, opts ...Option) *Rebinder {
	r := &Rebinder{
		docs:     docs,
		registry: registry,
		paths:    LocalPaths{},
		notifier: notify.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// 🚚 UpdateMoved rebinds every open document affected by moving src to dest.
//
// It runs after the move physically succeeded. Failures are isolated per document:
// each one is recorded in the report and notified, and the pass continues.
func (r *Rebinder) UpdateMoved(ctx context.Context, entryType resource.EntryType, src, dest string) *Report {
	logger := zerolog.Ctx(ctx).With().
		Str("entry_type", string(entryType)).
		Str("src", src).
		Str("dest", dest).
		Logger()
	ctx = logger.WithContext(ctx)

	report := &Report{EntryType: entryType, Source: src, Dest: dest}

	srcID, err := r.identity(src)
	if err != nil {
		r.fail(ctx, report, Outcome{From: src, To: dest, Status: StatusFailed, Err: err})
		return report
	}
	destID, err := r.identity(dest)
	if err != nil {
		r.fail(ctx, report, Outcome{From: src, To: dest, Status: StatusFailed, Err: err})
		return report
	}

	logger.Debug().Str("src_id", srcID.String()).Str("dest_id", destID.String()).Msg("rebinding moved resource")

	switch entryType {
	case resource.Directory:
		r.updateDirectory(ctx, report, src, dest, srcID, destID)
	default:
		r.updateFile(ctx, report, srcID, destID)
	}

	logger.Debug().
		Int("outcomes", len(report.Outcomes)).
		Int("failed", len(report.Failed())).
		Msg("rebind pass finished")

	return report
}

// identity parses url, treating a bare path as owned by the raw-path adapter
func (r *Rebinder) identity(url string) (resource.Identity, error) {
	if id, ok := resource.Parse(url); ok {
		return id, nil
	}
	raw, ok := r.registry.RawAdapter()
	if !ok {
		return resource.Identity{}, errors.Errorf("%w: %s", adapter.ErrUnrecognizedResource, url)
	}
	return resource.New(raw.Scheme(), r.paths.Canonicalize(url)), nil
}

// resolve returns the absolute form of a document name. Names with a scheme and
// absolute paths are returned as is.
func (r *Rebinder) resolve(name string) string {
	if _, ok := resource.Parse(name); ok {
		return name
	}
	if r.paths.IsAbs(name) {
		return name
	}
	return r.paths.Canonicalize(name)
}

func (r *Rebinder) updateFile(ctx context.Context, report *Report, srcID, destID resource.Identity) {
	pairs := r.registry.AlternatePairs(srcID, destID)

	for _, doc := range r.docs.List() {
		if doc.Name == "" || doc.Kind != document.Ordinary {
			continue
		}
		name := r.resolve(doc.Name)
		for _, p := range pairs {
			if name != p.Src {
				continue
			}
			if _, ok := r.docs.Get(doc.ID); !ok {
				break
			}
			r.rebind(ctx, report, doc, p.Dest)
			break
		}
	}
}

func (r *Rebinder) updateDirectory(ctx context.Context, report *Report, src, dest string, srcID, destID resource.Identity) {
	srcDir := resource.AddTrailingSeparator(src)
	destDir := resource.AddTrailingSeparator(dest)
	snapshot := r.docs.List()
	visited := make(map[uuid.UUID]bool, len(snapshot))

	pairs := []adapter.Pair{{Src: srcDir, Dest: destDir}}
	for _, p := range r.registry.AlternatePairs(srcID, destID) {
		pairs = append(pairs, adapter.Pair{
			Key:  p.Key,
			Src:  resource.AddTrailingSeparator(p.Src),
			Dest: resource.AddTrailingSeparator(p.Dest),
		})
	}

	// the directory's own listing first, under whichever name it is open
	for _, doc := range snapshot {
		for _, p := range pairs {
			if doc.Name != p.Src {
				continue
			}
			visited[doc.ID] = true
			r.rebind(ctx, report, doc, p.Dest)
			break
		}
	}

	// descendants open under any form of the directory, listings included
	for _, doc := range snapshot {
		if visited[doc.ID] {
			continue
		}
		to, ok := replaceAny(doc.Name, pairs)
		if !ok {
			continue
		}
		visited[doc.ID] = true
		if _, ok := r.docs.Get(doc.ID); !ok {
			continue
		}
		r.rebind(ctx, report, doc, to)
	}

	// relative names only match once resolved
	for _, doc := range snapshot {
		if visited[doc.ID] || doc.Name == "" {
			continue
		}
		name := r.resolve(doc.Name)
		if name == doc.Name {
			continue
		}
		to, ok := replaceAny(name, pairs)
		if !ok {
			continue
		}
		visited[doc.ID] = true
		if _, ok := r.docs.Get(doc.ID); ok {
			r.rebind(ctx, report, doc, to)
		}
	}
}

func replaceAny(name string, pairs []adapter.Pair) (string, bool) {
	for _, p := range pairs {
		if to, ok := resource.ReplacePrefix(name, p.Src, p.Dest); ok {
			return to, true
		}
	}
	return "", false
}

func (r *Rebinder) rebind(ctx context.Context, report *Report, doc document.Document, to string) {
	res, err := r.docs.Rebind(ctx, doc.ID, to)
	o := Outcome{
		Document: doc.ID,
		From:     doc.Name,
		To:       to,
		Status:   statusFor(res, err),
		Err:      err,
	}
	if err != nil {
		r.fail(ctx, report, o)
		return
	}

	zerolog.Ctx(ctx).Debug().
		Str("from", o.From).
		Str("to", o.To).
		Stringer("status", o.Status).
		Msg("rebound document")
	report.add(o)
}

func (r *Rebinder) fail(ctx context.Context, report *Report, o Outcome) {
	zerolog.Ctx(ctx).Debug().Err(o.Err).Str("from", o.From).Str("to", o.To).Msg("rebind failed")
	r.notifier.Error(ctx, fmt.Sprintf("could not rebind %s to %s", o.From, o.To), o.Err)
	report.add(o)
}
