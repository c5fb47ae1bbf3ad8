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

package adapter

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/rebind/pkg/notify"
	"github.com/walteh/rebind/pkg/resource"
	"gitlab.com/tozd/go/errors"
)

// ErrUnrecognizedResource is returned when a url's scheme has no registered adapter
var ErrUnrecognizedResource = errors.Base("unrecognized resource")

// 🗺️ Registry maps schemes to adapters. It is immutable once built.
type Registry struct {
	byName    map[string]*Adapter
	byScheme  map[string]*Adapter
	remap     map[string]string // alias scheme -> canonical scheme
	raw       *Adapter
	resolvers []AliasResolver
	notifier  notify.Notifier
}

// 🔧 Option configures a Registry at construction
type Option func(*Registry)

// WithSchemeRemap registers alias schemes that name the same resources as a
// canonical, registered scheme (alias -> canonical)
func WithSchemeRemap(remap map[string]string) Option {
	return func(r *Registry) {
		for alias, canonical := range remap {
			r.remap[alias] = canonical
		}
	}
}

// WithNotifier sets where "unrecognized resource" notices go
func WithNotifier(n notify.Notifier) Option {
	return func(r *Registry) {
		r.notifier = n
	}
}

// WithAliasResolvers appends resolvers after the default ones
func WithAliasResolvers(resolvers ...AliasResolver) Option {
	return func(r *Registry) {
		r.resolvers = append(r.resolvers, resolvers...)
	}
}

// 🏭 NewRegistry validates regs and builds a registry
func NewRegistry(regs []Registration, opts ...Option) (*Registry, error) {
	r := &Registry{
		byName:    make(map[string]*Adapter, len(regs)),
		byScheme:  make(map[string]*Adapter, len(regs)),
		remap:     map[string]string{},
		resolvers: DefaultAliasResolvers(),
		notifier:  notify.Discard,
	}

	for _, reg := range regs {
		if reg.Name == "" {
			return nil, errors.Errorf("adapter name is required")
		}
		if reg.Scheme == "" {
			return nil, errors.Errorf("adapter %s: scheme is required", reg.Name)
		}
		if strings.Contains(reg.Scheme, resource.SchemeSeparator) {
			return nil, errors.Errorf("adapter %s: scheme %q must not contain %q", reg.Name, reg.Scheme, resource.SchemeSeparator)
		}
		if _, ok := r.byName[reg.Name]; ok {
			return nil, errors.Errorf("adapter %s: registered twice", reg.Name)
		}
		if other, ok := r.byScheme[reg.Scheme]; ok {
			return nil, errors.Errorf("adapter %s: scheme %s already owned by %s", reg.Name, reg.Scheme, other.Name())
		}
		for _, pattern := range reg.TransferTo {
			if !doublestar.ValidatePattern(pattern) {
				return nil, errors.Errorf("adapter %s: invalid transfer pattern %q", reg.Name, pattern)
			}
		}

		a := newAdapter(reg)
		if a.RawPaths() {
			if r.raw != nil {
				return nil, errors.Errorf("adapter %s: raw paths already owned by %s", reg.Name, r.raw.Name())
			}
			r.raw = a
		}
		r.byName[a.Name()] = a
		r.byScheme[a.Scheme()] = a
	}

	for _, opt := range opts {
		opt(r)
	}

	for alias, canonical := range r.remap {
		if _, ok := r.byScheme[alias]; ok {
			return nil, errors.Errorf("scheme alias %s shadows a registered scheme", alias)
		}
		if _, ok := r.byScheme[canonical]; !ok {
			return nil, errors.Errorf("scheme alias %s points to unregistered scheme %s", alias, canonical)
		}
	}

	return r, nil
}

// 🔍 GetAdapterForScheme returns the adapter owning scheme, following the remap table
func (r *Registry) GetAdapterForScheme(scheme string) (*Adapter, bool) {
	if a, ok := r.byScheme[scheme]; ok {
		return a, true
	}
	if canonical, ok := r.remap[scheme]; ok {
		a, ok := r.byScheme[canonical]
		return a, ok
	}
	return nil, false
}

// 🔍 GetAdapterForURL returns the adapter owning url. Bare local paths resolve to
// the raw-path adapter. An unmatched url is reported through the notifier.
func (r *Registry) GetAdapterForURL(ctx context.Context, url string) (*Adapter, error) {
	id, ok := resource.Parse(url)
	if !ok {
		if r.raw != nil {
			return r.raw, nil
		}
		r.notifier.Warn(ctx, "unrecognized resource: "+url)
		return nil, errors.Errorf("%w: %s has no scheme and no adapter owns raw paths", ErrUnrecognizedResource, url)
	}

	a, ok := r.GetAdapterForScheme(id.Scheme)
	if !ok {
		zerolog.Ctx(ctx).Debug().Str("url", url).Str("scheme", id.Scheme).Msg("no adapter for scheme")
		r.notifier.Warn(ctx, "unrecognized resource: "+url)
		return nil, errors.Errorf("%w: scheme %s (options: %s)", ErrUnrecognizedResource, id.Scheme, strings.Join(r.Schemes(), ", "))
	}
	return a, nil
}

// Get returns an adapter by name
func (r *Registry) Get(name string) (*Adapter, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// RawAdapter returns the adapter owning bare local paths, if any
func (r *Registry) RawAdapter() (*Adapter, bool) {
	return r.raw, r.raw != nil
}

// Canonical rewrites an alias scheme to the scheme its adapter is registered under
func (r *Registry) Canonical(id resource.Identity) resource.Identity {
	if canonical, ok := r.remap[id.Scheme]; ok {
		return id.WithScheme(canonical)
	}
	return id
}

// AliasSchemes returns the alias schemes remapped to canonical, sorted
func (r *Registry) AliasSchemes(canonical string) []string {
	var out []string
	for alias, target := range r.remap {
		if target == canonical {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Adapters returns every registered adapter sorted by name
func (r *Registry) Adapters() []*Adapter {
	out := make([]*Adapter, 0, len(r.byName))
	for _, a := range r.byName {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Schemes returns every registered scheme sorted
func (r *Registry) Schemes() []string {
	out := make([]string, 0, len(r.byScheme))
	for s := range r.byScheme {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

var (
	defaultMu       sync.RWMutex
	defaultRegistry *Registry
)

// 📝 Init builds the process-wide registry. It may only be called once.
func Init(regs []Registration, opts ...Option) (*Registry, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultRegistry != nil {
		return nil, errors.Errorf("adapter registry already initialized")
	}

	r, err := NewRegistry(regs, opts...)
	if err != nil {
		return nil, errors.Errorf("building registry: %w", err)
	}
	defaultRegistry = r
	return r, nil
}

// 🎯 Default returns the process-wide registry, or nil before Init
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}
