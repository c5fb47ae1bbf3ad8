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
	"slices"

	"github.com/bmatcuk/doublestar/v4"
)

// 📝 Registration describes an adapter to register at startup
type Registration struct {
	// Name is the unique adapter name (e.g. "files")
	Name string
	// Scheme is the url scheme the adapter owns (e.g. "oil")
	Scheme string
	// TransferTo lists adapter names (or glob patterns over names) this adapter can
	// exchange resources with directly
	TransferTo []string
	// RawPaths marks the adapter that owns bare local paths
	RawPaths bool
}

// 🔌 Adapter is a registered, read-only resource provider
type Adapter struct {
	name       string
	scheme     string
	transferTo []string
	rawPaths   bool
}

func newAdapter(reg Registration) *Adapter {
	return &Adapter{
		name:       reg.Name,
		scheme:     reg.Scheme,
		transferTo: slices.Clone(reg.TransferTo),
		rawPaths:   reg.RawPaths,
	}
}

// Name returns the unique adapter name
func (a *Adapter) Name() string { return a.name }

// Scheme returns the scheme the adapter is registered under
func (a *Adapter) Scheme() string { return a.scheme }

// RawPaths reports whether bare local paths alias this adapter
func (a *Adapter) RawPaths() bool { return a.rawPaths }

// TransferTo returns a copy of the declared transfer capabilities
func (a *Adapter) TransferTo() []string { return slices.Clone(a.transferTo) }

// 🔄 CanTransferTo reports whether the adapter declares a direct transfer
// relationship with the named adapter
func (a *Adapter) CanTransferTo(name string) bool {
	for _, pattern := range a.transferTo {
		if pattern == name {
			return true
		}
		// patterns were validated at registration
		if matched, _ := doublestar.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// String returns name(scheme://)
func (a *Adapter) String() string {
	return a.name + "(" + a.scheme + "://)"
}
