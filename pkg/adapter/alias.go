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
	"github.com/walteh/rebind/pkg/resource"
)

// 🏷️ Form is one name under which a resource may be open.
//
// Key identifies the kind of form ("canonical", "scheme:<alias>", "raw") so that a
// source form can be paired with the same kind of destination form.
type Form struct {
	Key  string
	Name string
}

// Keys used by the default resolvers
const (
	FormCanonical = "canonical"
	FormRaw       = "raw"
	formScheme    = "scheme:"
)

// 🔗 AliasResolver enumerates alternate names of an identity.
// Resolvers run in registration order; that order is the resolution order.
type AliasResolver interface {
	Forms(r *Registry, id resource.Identity) []Form
}

// AliasResolverFunc adapts a function to AliasResolver
type AliasResolverFunc func(r *Registry, id resource.Identity) []Form

func (f AliasResolverFunc) Forms(r *Registry, id resource.Identity) []Form {
	return f(r, id)
}

// DefaultAliasResolvers returns canonical, scheme remap and raw path resolvers, in that order
func DefaultAliasResolvers() []AliasResolver {
	return []AliasResolver{
		AliasResolverFunc(canonicalForm),
		AliasResolverFunc(remappedForms),
		AliasResolverFunc(rawForm),
	}
}

func canonicalForm(r *Registry, id resource.Identity) []Form {
	return []Form{{Key: FormCanonical, Name: r.Canonical(id).String()}}
}

func remappedForms(r *Registry, id resource.Identity) []Form {
	canonical := r.Canonical(id)
	var out []Form
	for _, alias := range r.AliasSchemes(canonical.Scheme) {
		out = append(out, Form{Key: formScheme + alias, Name: canonical.WithScheme(alias).String()})
	}
	return out
}

func rawForm(r *Registry, id resource.Identity) []Form {
	a, ok := r.GetAdapterForScheme(id.Scheme)
	if !ok || !a.RawPaths() {
		return nil
	}
	return []Form{{Key: FormRaw, Name: id.Path}}
}

// 📋 Alternates lists every name id may be open under, deduplicated, in resolver order
func (r *Registry) Alternates(id resource.Identity) []Form {
	seen := map[string]bool{}
	var out []Form
	for _, res := range r.resolvers {
		for _, f := range res.Forms(r, id) {
			if f.Name == "" || seen[f.Name] {
				continue
			}
			seen[f.Name] = true
			out = append(out, f)
		}
	}
	return out
}

// 🔀 Pair maps a source name form to the destination name it becomes
type Pair struct {
	Key  string
	Src  string
	Dest string
}

// AlternatePairs pairs each alternate of src with the destination form of the same
// kind. When dest has no form of that kind, the canonical destination is used.
func (r *Registry) AlternatePairs(src, dest resource.Identity) []Pair {
	destForms := r.Alternates(dest)
	byKey := make(map[string]string, len(destForms))
	canonical := r.Canonical(dest).String()
	for _, f := range destForms {
		if _, ok := byKey[f.Key]; !ok {
			byKey[f.Key] = f.Name
		}
	}

	var out []Pair
	for _, f := range r.Alternates(src) {
		to, ok := byKey[f.Key]
		if !ok {
			to = canonical
		}
		out = append(out, Pair{Key: f.Key, Src: f.Name, Dest: to})
	}
	return out
}
