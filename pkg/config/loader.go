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
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// 📂 Load reads and validates one config file. The format is chosen by extension:
// .json, .yaml/.yml, .hcl or .toml.
func Load(ctx context.Context, path string) (*Config, error) {
	cfg, err := parseFile(ctx, path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating %s: %w", path, err)
	}
	return cfg, nil
}

// 📚 LoadAll reads every file concurrently and merges them in the order given.
// Validation runs once on the merged result, so one file may alias schemes
// declared in another.
func LoadAll(ctx context.Context, paths ...string) (*Config, error) {
	if len(paths) == 0 {
		return nil, errors.Errorf("no config files given")
	}

	parsed := make([]*Config, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			cfg, err := parseFile(gctx, path)
			if err != nil {
				return err
			}
			parsed[i] = cfg
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := &Config{}
	for _, cfg := range parsed {
		merged.Merge(cfg)
	}
	if err := merged.Validate(); err != nil {
		return nil, errors.Errorf("validating merged config: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Strs("files", paths).
		Int("adapters", len(merged.Adapters)).
		Int("aliases", len(merged.Aliases)).
		Msg("loaded config")

	return merged, nil
}

func parseFile(ctx context.Context, path string) (*Config, error) {
	parser := GetParser(path)
	if parser == nil {
		return nil, errors.Errorf("unsupported config file extension %q", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	cfg, err := parser.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("loading %s: %w", path, err)
	}
	cfg.location = path
	return cfg, nil
}
