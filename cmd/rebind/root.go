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
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rebind/cmd/rebind/opts"
	"github.com/walteh/rebind/pkg/adapter"
	"github.com/walteh/rebind/pkg/config"
	"github.com/walteh/rebind/pkg/document"
	"gitlab.com/tozd/go/errors"
)

const defaultConfigFile = ".rebind.hcl"

var (
	// Flags
	configFiles []string
	debugLogs   bool
	cwd         string
)

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&configFiles, "config", "c", nil, "config file path (repeatable, later files win)")
	cmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&cwd, "cwd", "", "directory relative document names resolve against")
}

// loadRootOpts fills o from flags, REBIND_* variables and config files
func loadRootOpts(ctx context.Context, o *opts.RootOpts) (context.Context, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return ctx, err
	}

	ctx = setupLogging(ctx, debugLogs || env.Debug)

	files := configFiles
	if len(files) == 0 {
		files = env.Config
	}
	if len(files) == 0 {
		files = []string{defaultConfigFile}
	}

	cfg, err := config.LoadAll(ctx, files...)
	if err != nil {
		return ctx, errors.Errorf("loading config: %w", err)
	}

	reg, err := cfg.Registry(adapter.WithNotifier(o.Notifier))
	if err != nil {
		return ctx, err
	}

	dir := document.NewDirectory()
	o.Cwd = firstNonEmpty(cwd, env.Cwd)
	if cfg.Workspace != nil {
		if err := cfg.Workspace.Apply(dir); err != nil {
			return ctx, errors.Errorf("applying workspace: %w", err)
		}
		o.Cwd = firstNonEmpty(o.Cwd, cfg.Workspace.Cwd)
	}

	o.Config = cfg
	o.Registry = reg
	o.Directory = dir
	return ctx, nil
}

// setupLogging configures zerolog based on flags
func setupLogging(ctx context.Context, enabled bool) context.Context {
	level := zerolog.InfoLevel
	if enabled {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
