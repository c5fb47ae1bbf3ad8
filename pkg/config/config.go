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

package config

import (
	"context"
	"maps"
	"path/filepath"
	"strings"

	"github.com/walteh/rebind/pkg/adapter"
	"github.com/walteh/rebind/pkg/document"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

func hasExt(filename string, exts ...string) bool {
	ext := strings.ToLower(filepath.Ext(strings.TrimSpace(filename)))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// 🔧 Config is the full rebind configuration
type Config struct {
	Adapters  []AdapterConfig   `json:"adapters" yaml:"adapters" toml:"adapters"`
	Aliases   map[string]string `json:"aliases,omitempty" yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Workspace *Workspace        `json:"workspace,omitempty" yaml:"workspace,omitempty" toml:"workspace,omitempty"`

	location string
}

// 📦 AdapterConfig declares one adapter
type AdapterConfig struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Scheme     string   `json:"scheme" yaml:"scheme" toml:"scheme"`
	TransferTo []string `json:"transfer_to,omitempty" yaml:"transfer_to,omitempty" toml:"transfer_to,omitempty"`
	RawPaths   bool     `json:"raw_paths,omitempty" yaml:"raw_paths,omitempty" toml:"raw_paths,omitempty"`
}

// 🗂️ Workspace seeds a document directory
type Workspace struct {
	Cwd       string           `json:"cwd,omitempty" yaml:"cwd,omitempty" toml:"cwd,omitempty"`
	Documents []DocumentConfig `json:"documents,omitempty" yaml:"documents,omitempty" toml:"documents,omitempty"`
}

// 📄 DocumentConfig describes one open document
type DocumentConfig struct {
	Name    string   `json:"name" yaml:"name" toml:"name"`
	Kind    string   `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"` // ordinary (default) or listing
	Loaded  bool     `json:"loaded,omitempty" yaml:"loaded,omitempty" toml:"loaded,omitempty"`
	Dirty   bool     `json:"dirty,omitempty" yaml:"dirty,omitempty" toml:"dirty,omitempty"`
	Listed  bool     `json:"listed,omitempty" yaml:"listed,omitempty" toml:"listed,omitempty"`
	Lines   []string `json:"lines,omitempty" yaml:"lines,omitempty" toml:"lines,omitempty"`
	Windows int      `json:"windows,omitempty" yaml:"windows,omitempty" toml:"windows,omitempty"` // windows showing the document
}

// Location returns the file the config was loaded from, if any
func (c *Config) Location() string {
	return c.location
}

// ✅ Validate checks the config for errors
func (c *Config) Validate() error {
	names := map[string]bool{}
	schemes := map[string]string{}
	for i, a := range c.Adapters {
		if a.Name == "" {
			return errors.Errorf("adapters[%d]: name is required", i)
		}
		if a.Scheme == "" {
			return errors.Errorf("adapter %s: scheme is required", a.Name)
		}
		if names[a.Name] {
			return errors.Errorf("adapter %s: declared twice", a.Name)
		}
		if owner, ok := schemes[a.Scheme]; ok {
			return errors.Errorf("adapter %s: scheme %s already owned by %s", a.Name, a.Scheme, owner)
		}
		names[a.Name] = true
		schemes[a.Scheme] = a.Name
	}

	for alias, canonical := range c.Aliases {
		if _, ok := schemes[canonical]; !ok {
			return errors.Errorf("alias %s: unknown scheme %s", alias, canonical)
		}
	}

	if c.Workspace != nil {
		docs := map[string]bool{}
		for i, d := range c.Workspace.Documents {
			if _, err := parseKind(d.Kind); err != nil {
				return errors.Errorf("workspace.documents[%d]: %w", i, err)
			}
			if d.Windows < 0 {
				return errors.Errorf("workspace.documents[%d]: windows must not be negative", i)
			}
			if d.Name == "" {
				continue
			}
			if docs[d.Name] {
				return errors.Errorf("workspace.documents[%d]: %s declared twice", i, d.Name)
			}
			docs[d.Name] = true
		}
	}

	return nil
}

// 🔀 Merge folds other into c. Adapters append, aliases and the workspace are overridden.
func (c *Config) Merge(other *Config) {
	c.Adapters = append(c.Adapters, other.Adapters...)
	if len(other.Aliases) > 0 {
		if c.Aliases == nil {
			c.Aliases = map[string]string{}
		}
		maps.Copy(c.Aliases, other.Aliases)
	}
	if other.Workspace != nil {
		c.Workspace = other.Workspace
	}
	if c.location == "" {
		c.location = other.location
	}
}

// Registrations converts the adapter declarations
func (c *Config) Registrations() []adapter.Registration {
	out := make([]adapter.Registration, 0, len(c.Adapters))
	for _, a := range c.Adapters {
		out = append(out, adapter.Registration{
			Name:       a.Name,
			Scheme:     a.Scheme,
			TransferTo: a.TransferTo,
			RawPaths:   a.RawPaths,
		})
	}
	return out
}

// 🏭 Registry builds an adapter registry from the config
func (c *Config) Registry(opts ...adapter.Option) (*adapter.Registry, error) {
	opts = append([]adapter.Option{adapter.WithSchemeRemap(c.Aliases)}, opts...)
	reg, err := adapter.NewRegistry(c.Registrations(), opts...)
	if err != nil {
		return nil, errors.Errorf("building adapter registry: %w", err)
	}
	return reg, nil
}

// 🪟 Apply opens every declared document and its windows in d
func (w *Workspace) Apply(d *document.Directory) error {
	for _, dc := range w.Documents {
		kind, err := parseKind(dc.Kind)
		if err != nil {
			return err
		}
		doc, err := d.Open(dc.Name, document.OpenOptions{
			Kind:   kind,
			Loaded: dc.Loaded,
			Dirty:  dc.Dirty,
			Listed: dc.Listed,
			Lines:  dc.Lines,
		})
		if err != nil {
			return errors.Errorf("opening workspace document: %w", err)
		}
		for range dc.Windows {
			if _, err := d.OpenWindow(doc.ID); err != nil {
				return errors.Errorf("opening window for %s: %w", dc.Name, err)
			}
		}
	}
	return nil
}

func parseKind(s string) (document.Kind, error) {
	switch strings.ToLower(s) {
	case "", document.Ordinary.String():
		return document.Ordinary, nil
	case document.Listing.String():
		return document.Listing, nil
	default:
		return document.Ordinary, errors.Errorf("invalid document kind %q", s)
	}
}
