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
package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rebind/cmd/rebind/opts"
	"github.com/walteh/rebind/pkg/config"
	"github.com/walteh/rebind/pkg/document"
	"github.com/walteh/rebind/pkg/notify"
	"gitlab.com/tozd/go/errors"
)

func setupOpts(t *testing.T, docs ...config.DocumentConfig) *opts.RootOpts {
	t.Helper()
	cfg := &config.Config{
		Adapters: []config.AdapterConfig{
			{Name: "files", Scheme: "oil", RawPaths: true, TransferTo: []string{"trash"}},
			{Name: "trash", Scheme: "oil-trash"},
			{Name: "s3", Scheme: "oil-s3"},
		},
		Aliases: map[string]string{"file": "oil"},
	}
	require.NoError(t, cfg.Validate())

	reg, err := cfg.Registry()
	require.NoError(t, err)

	dir := document.NewDirectory()
	require.NoError(t, (&config.Workspace{Documents: docs}).Apply(dir))

	return &opts.RootOpts{
		Config:    cfg,
		Registry:  reg,
		Directory: dir,
		Notifier:  notify.Discard,
		Cwd:       "/home/u",
	}
}

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestAdaptersCmd(t *testing.T) {
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	out, err := run(t, NewAdaptersCmd(setupOpts(t)))
	require.NoError(t, err)
	assert.Contains(t, out, "files")
	assert.Contains(t, out, "oil-trash")
	assert.Contains(t, out, "file")
	assert.Contains(t, out, "yes")
}

func TestResolveCmd(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        string
		errContains string
	}{
		{name: "move_to_trash", args: []string{"move", "oil:///a.txt", "oil-trash:///a.txt"}, want: "files (oil://)"},
		{name: "restore_from_trash", args: []string{"move", "oil-trash:///a.txt", "/home/u/a.txt"}, want: "files (oil://)"},
		{name: "create", args: []string{"create", "oil-trash:///a.txt"}, want: "trash (oil-trash://)"},
		{name: "directory", args: []string{"copy", "oil:///a", "oil:///b", "--type", "directory"}, want: "files (oil://)"},
		{name: "incompatible", args: []string{"move", "oil-trash:///a.txt", "oil-s3:///a.txt"}, errContains: "incompatible transfer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, NewResolveCmd(setupOpts(t)), tt.args...)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestResolveCmdRejectsBadInput(t *testing.T) {
	_, err := run(t, NewResolveCmd(setupOpts(t)), "rename", "oil:///a")
	assert.ErrorContains(t, err, "invalid action kind")

	_, err = run(t, NewResolveCmd(setupOpts(t)), "move", "oil:///a")
	assert.ErrorContains(t, err, "both a source and a destination")

	_, err = run(t, NewResolveCmd(setupOpts(t)), "delete", "oil:///a", "--type", "link")
	assert.ErrorContains(t, err, "invalid entry type")
}

func TestMoveCmd(t *testing.T) {
	o := setupOpts(t,
		config.DocumentConfig{Name: "oil:///home/u/a/", Kind: "listing", Windows: 1},
		config.DocumentConfig{Name: "oil:///home/u/a/x.txt", Windows: 1},
		config.DocumentConfig{Name: "a/y.txt"},
		config.DocumentConfig{Name: "oil:///home/u/c.txt"},
	)

	out, err := run(t, NewMoveCmd(o), "directory", "oil:///home/u/a", "oil:///home/u/b")
	require.NoError(t, err)
	assert.Contains(t, out, "moved directory with adapter files")
	assert.Contains(t, out, "oil:///home/u/b/x.txt (ordinary)")
	assert.Contains(t, out, "/home/u/b/y.txt (ordinary)")
	assert.Contains(t, out, "oil:///home/u/c.txt (ordinary)")
	assert.Contains(t, out, "1: oil:///home/u/b/")
	assert.Contains(t, out, "2: oil:///home/u/b/x.txt")

	_, ok := o.Directory.FindByName("oil:///home/u/a/x.txt")
	assert.False(t, ok)
}

func TestMoveCmdReportsCollisions(t *testing.T) {
	o := setupOpts(t,
		config.DocumentConfig{Name: "oil:///home/u/a.txt", Dirty: true},
		config.DocumentConfig{Name: "oil:///home/u/b.txt", Dirty: true},
	)

	out, err := run(t, NewMoveCmd(o), "file", "oil:///home/u/a.txt", "oil:///home/u/b.txt")
	require.Error(t, err)
	assert.True(t, errors.Is(err, document.ErrIdentityCollision))
	assert.Contains(t, out, "collision")
	assert.Contains(t, out, "oil:///home/u/a.txt (ordinary, dirty)")
}

func TestMoveCmdIncompatible(t *testing.T) {
	o := setupOpts(t, config.DocumentConfig{Name: "oil-trash:///a.txt"})

	_, err := run(t, NewMoveCmd(o), "file", "oil-trash:///a.txt", "oil-s3:///a.txt")
	require.Error(t, err)

	_, ok := o.Directory.FindByName("oil-trash:///a.txt")
	assert.True(t, ok, "a failed resolve leaves documents alone")
}
