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
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rebind/pkg/adapter"
	"github.com/walteh/rebind/pkg/resource"
	"gitlab.com/tozd/go/errors"
)

func setupTestContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func setupResolver(t *testing.T) *Resolver {
	t.Helper()
	reg, err := adapter.NewRegistry([]adapter.Registration{
		{Name: "files", Scheme: "oil", RawPaths: true, TransferTo: []string{"trash", "ssh-*"}},
		{Name: "trash", Scheme: "oil-trash"},
		{Name: "ssh-prod", Scheme: "oil-ssh"},
		{Name: "s3", Scheme: "oil-s3"},
	}, adapter.WithSchemeRemap(map[string]string{"file": "oil"}))
	require.NoError(t, err)
	return NewResolver(reg)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		want    string
		wantErr error
	}{
		{
			name:   "same_adapter_move",
			action: Action{Kind: Move, Source: "oil:///a.txt", Dest: "oil:///b.txt", EntryType: resource.File},
			want:   "files",
		},
		{
			name:   "alias_scheme",
			action: Action{Kind: Move, Source: "file:///a.txt", Dest: "oil:///b.txt", EntryType: resource.File},
			want:   "files",
		},
		{
			name:   "create_uses_dest",
			action: Action{Kind: Create, Dest: "oil-trash:///a.txt", EntryType: resource.File},
			want:   "trash",
		},
		{
			name:   "delete_uses_source",
			action: Action{Kind: Delete, Source: "oil-ssh:///srv/a.txt", EntryType: resource.File},
			want:   "ssh-prod",
		},
		{
			name:   "raw_path_uses_raw_adapter",
			action: Action{Kind: Create, Dest: "/home/u/a.txt", EntryType: resource.File},
			want:   "files",
		},
		{
			name:   "source_declares_destination",
			action: Action{Kind: Move, Source: "oil:///a.txt", Dest: "oil-trash:///a.txt", EntryType: resource.File},
			want:   "files",
		},
		{
			name:   "destination_declares_source",
			action: Action{Kind: Move, Source: "oil-trash:///a.txt", Dest: "oil:///a.txt", EntryType: resource.File},
			want:   "files",
		},
		{
			name:   "glob_declaration",
			action: Action{Kind: Copy, Source: "oil-ssh:///srv/a", Dest: "/home/u/a", EntryType: resource.Directory},
			want:   "files",
		},
		{
			name:    "incompatible",
			action:  Action{Kind: Move, Source: "oil-trash:///a.txt", Dest: "oil-s3:///a.txt", EntryType: resource.File},
			wantErr: ErrIncompatibleTransfer,
		},
		{
			name:    "unknown_source",
			action:  Action{Kind: Move, Source: "gs://a.txt", Dest: "oil:///a.txt", EntryType: resource.File},
			wantErr: ErrNoAdapter,
		},
		{
			name:    "unknown_dest",
			action:  Action{Kind: Copy, Source: "oil:///a.txt", Dest: "gs://a.txt", EntryType: resource.File},
			wantErr: ErrNoAdapter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestContext(t)
			r := setupResolver(t)

			a, err := r.Resolve(ctx, tt.action)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, a)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.Name())
		})
	}
}

func TestResolveIsSymmetric(t *testing.T) {
	ctx := setupTestContext(t)
	r := setupResolver(t)

	for _, pair := range [][2]string{
		{"oil:///a", "oil-trash:///a"},
		{"oil:///a", "oil-ssh:///a"},
		{"oil-trash:///a", "oil-s3:///a"},
	} {
		there, errThere := r.Resolve(ctx, Action{Kind: Move, Source: pair[0], Dest: pair[1], EntryType: resource.File})
		back, errBack := r.Resolve(ctx, Action{Kind: Move, Source: pair[1], Dest: pair[0], EntryType: resource.File})

		assert.Equal(t, errThere == nil, errBack == nil, "%s <-> %s", pair[0], pair[1])
		if errThere == nil {
			assert.Same(t, there, back, "%s <-> %s", pair[0], pair[1])
		}
	}
}

func TestIncompatibleTransferNamesBothAdapters(t *testing.T) {
	ctx := setupTestContext(t)
	r := setupResolver(t)

	_, err := r.Resolve(ctx, Action{Kind: Copy, Source: "oil-trash:///a", Dest: "oil-s3:///a", EntryType: resource.File})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "trash")
	assert.Contains(t, err.Error(), "s3")

	details := errors.AllDetails(err)
	assert.Equal(t, "trash", details["src_adapter"])
	assert.Equal(t, "s3", details["dest_adapter"])
}

func TestActionValidate(t *testing.T) {
	tests := []struct {
		name        string
		action      Action
		errContains string
	}{
		{name: "move", action: Action{Kind: Move, Source: "a", Dest: "b", EntryType: resource.File}},
		{name: "create", action: Action{Kind: Create, Dest: "b", EntryType: resource.Directory}},
		{name: "delete", action: Action{Kind: Delete, Source: "a", EntryType: resource.File}},
		{name: "move_without_dest", action: Action{Kind: Move, Source: "a", EntryType: resource.File}, errContains: "both"},
		{name: "create_without_dest", action: Action{Kind: Create, EntryType: resource.File}, errContains: "destination"},
		{name: "delete_without_source", action: Action{Kind: Delete, EntryType: resource.File}, errContains: "source"},
		{name: "bad_kind", action: Action{Kind: "rename", EntryType: resource.File}, errContains: "invalid action kind"},
		{name: "bad_entry_type", action: Action{Kind: Delete, Source: "a", EntryType: "link"}, errContains: "invalid entry type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate()
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("copy")
	require.NoError(t, err)
	assert.Equal(t, Copy, k)

	_, err = ParseKind("rename")
	assert.Error(t, err)
}
