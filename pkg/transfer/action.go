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

package transfer

import (
	"github.com/walteh/rebind/pkg/resource"
	"gitlab.com/tozd/go/errors"
)

// 🎬 Kind is what an action does to its resources
type Kind string

const (
	Create Kind = "create"
	Delete Kind = "delete"
	Move   Kind = "move"
	Copy   Kind = "copy"
)

// ParseKind accepts create, delete, move or copy
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Create, Delete, Move, Copy:
		return Kind(s), nil
	default:
		return "", errors.Errorf("invalid action kind %q (expected create, delete, move or copy)", s)
	}
}

// 📦 Action is one filesystem-like operation requested by the user
type Action struct {
	Kind      Kind
	Source    string
	Dest      string
	EntryType resource.EntryType
}

// Resource returns the url that selects the owning adapter: Source when set, otherwise Dest
func (a Action) Resource() string {
	if a.Source != "" {
		return a.Source
	}
	return a.Dest
}

// Validate checks that the action names the urls its kind needs
func (a Action) Validate() error {
	switch a.Kind {
	case Move, Copy:
		if a.Source == "" || a.Dest == "" {
			return errors.Errorf("%s needs both a source and a destination", a.Kind)
		}
	case Create:
		if a.Dest == "" {
			return errors.Errorf("create needs a destination")
		}
	case Delete:
		if a.Source == "" {
			return errors.Errorf("delete needs a source")
		}
	default:
		return errors.Errorf("invalid action kind %q", a.Kind)
	}
	switch a.EntryType {
	case resource.File, resource.Directory:
	default:
		return errors.Errorf("invalid entry type %q", a.EntryType)
	}
	return nil
}
