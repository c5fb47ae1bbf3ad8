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

package operation

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/walteh/rebind/pkg/adapter"
	"github.com/walteh/rebind/pkg/document"
	"github.com/walteh/rebind/pkg/rebind"
	"github.com/walteh/rebind/pkg/resource"
	"github.com/walteh/rebind/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

// 🔧 MockExecutor is a mock implementation of Executor
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(ctx context.Context, a *adapter.Adapter, action transfer.Action) error {
	args := m.Called(ctx, a, action)
	return args.Error(0)
}

func setupTestContext(t *testing.T) context.Context {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

type fixture struct {
	dir    *document.Directory
	reg    *adapter.Registry
	exec   *MockExecutor
	runner *Runner
}

func setupFixture(t *testing.T, async bool, names ...string) *fixture {
	t.Helper()
	reg, err := adapter.NewRegistry([]adapter.Registration{
		{Name: "files", Scheme: "oil", RawPaths: true, TransferTo: []string{"trash"}},
		{Name: "trash", Scheme: "oil-trash"},
		{Name: "s3", Scheme: "oil-s3"},
	})
	require.NoError(t, err)

	dir := document.NewDirectory()
	for _, name := range names {
		_, err := dir.Open(name, document.OpenOptions{})
		require.NoError(t, err)
	}

	exec := &MockExecutor{}
	runner, err := New(Options{
		Resolver: transfer.NewResolver(reg),
		Executor: exec,
		Rebinder: rebind.New(dir, reg, rebind.WithPathResolver(rebind.LocalPaths{Cwd: "/"})),
		Async:    async,
	})
	require.NoError(t, err)

	return &fixture{dir: dir, reg: reg, exec: exec, runner: runner}
}

func names(d *document.Directory) []string {
	var out []string
	for _, doc := range d.List() {
		out = append(out, doc.Name)
	}
	return out
}

func TestNew(t *testing.T) {
	reg, err := adapter.NewRegistry(nil)
	require.NoError(t, err)

	_, err = New(Options{Executor: NewJournal(), Rebinder: rebind.New(document.NewDirectory(), reg)})
	assert.ErrorContains(t, err, "resolver is required")

	_, err = New(Options{Resolver: transfer.NewResolver(reg), Rebinder: rebind.New(document.NewDirectory(), reg)})
	assert.ErrorContains(t, err, "executor is required")

	_, err = New(Options{Resolver: transfer.NewResolver(reg), Executor: NewJournal()})
	assert.ErrorContains(t, err, "rebinder is required")
}

func TestRunMove(t *testing.T) {
	ctx := setupTestContext(t)
	f := setupFixture(t, false, "oil:///a.txt", "oil:///c.txt")

	action := transfer.Action{Kind: transfer.Move, Source: "oil:///a.txt", Dest: "oil-trash:///a.txt", EntryType: resource.File}
	f.exec.On("Execute", mock.Anything, mock.MatchedBy(func(a *adapter.Adapter) bool { return a.Name() == "files" }), action).Return(nil).Once()

	res, err := f.runner.Run(ctx, action)
	require.NoError(t, err)
	assert.Equal(t, "files", res.Adapter.Name())
	require.NotNil(t, res.Report)
	assert.Len(t, res.Report.Rebound(), 1)
	assert.Equal(t, []string{"oil-trash:///a.txt", "oil:///c.txt"}, names(f.dir))
	f.exec.AssertExpectations(t)
}

func TestRunCopyDoesNotRebind(t *testing.T) {
	ctx := setupTestContext(t)
	f := setupFixture(t, false, "oil:///a.txt")

	action := transfer.Action{Kind: transfer.Copy, Source: "oil:///a.txt", Dest: "oil:///b.txt", EntryType: resource.File}
	f.exec.On("Execute", mock.Anything, mock.Anything, action).Return(nil).Once()

	res, err := f.runner.Run(ctx, action)
	require.NoError(t, err)
	assert.Nil(t, res.Report)
	assert.Equal(t, []string{"oil:///a.txt"}, names(f.dir))
	f.exec.AssertExpectations(t)
}

func TestRunFailuresLeaveDocumentsAlone(t *testing.T) {
	tests := []struct {
		name    string
		action  transfer.Action
		setup   func(exec *MockExecutor)
		wantErr error
	}{
		{
			name:    "incompatible_transfer",
			action:  transfer.Action{Kind: transfer.Move, Source: "oil:///a.txt", Dest: "oil-s3:///a.txt", EntryType: resource.File},
			wantErr: transfer.ErrIncompatibleTransfer,
		},
		{
			name:    "no_adapter",
			action:  transfer.Action{Kind: transfer.Move, Source: "gs:///a.txt", Dest: "oil:///b.txt", EntryType: resource.File},
			wantErr: transfer.ErrNoAdapter,
		},
		{
			name:   "executor_failure",
			action: transfer.Action{Kind: transfer.Move, Source: "oil:///a.txt", Dest: "oil:///b.txt", EntryType: resource.File},
			setup: func(exec *MockExecutor) {
				exec.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("permission denied")).Once()
			},
		},
		{
			name:   "invalid_action",
			action: transfer.Action{Kind: transfer.Move, Source: "oil:///a.txt", EntryType: resource.File},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := setupTestContext(t)
			f := setupFixture(t, false, "oil:///a.txt")
			if tt.setup != nil {
				tt.setup(f.exec)
			}

			res, err := f.runner.Run(ctx, tt.action)
			require.Error(t, err)
			assert.Nil(t, res)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			assert.Equal(t, []string{"oil:///a.txt"}, names(f.dir))
			f.exec.AssertExpectations(t)
		})
	}
}

func TestRunAsyncCancelled(t *testing.T) {
	tests := []struct {
		name     string
		execute  func(ctx context.Context) error
		wantErr  bool
		wantDocs []string
	}{
		{
			name: "executor_stops",
			execute: func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
			wantErr:  true,
			wantDocs: []string{"oil:///a.txt"},
		},
		{
			name: "executor_finishes_anyway",
			execute: func(ctx context.Context) error {
				<-ctx.Done()
				time.Sleep(20 * time.Millisecond)
				return nil
			},
			wantDocs: []string{"oil:///b.txt"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(setupTestContext(t))
			defer cancel()
			f := setupFixture(t, true, "oil:///a.txt")

			runner, err := New(Options{
				Resolver: transfer.NewResolver(f.reg),
				Executor: ExecutorFunc(func(ctx context.Context, _ *adapter.Adapter, _ transfer.Action) error {
					return tt.execute(ctx)
				}),
				Rebinder: rebind.New(f.dir, f.reg, rebind.WithPathResolver(rebind.LocalPaths{Cwd: "/"})),
				Async:    true,
			})
			require.NoError(t, err)

			go func() {
				time.Sleep(5 * time.Millisecond)
				cancel()
			}()

			res, err := runner.Run(ctx, transfer.Action{Kind: transfer.Move, Source: "oil:///a.txt", Dest: "oil:///b.txt", EntryType: resource.File})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, res.Report)
				assert.Len(t, res.Report.Rebound(), 1)
			}
			assert.Equal(t, tt.wantDocs, names(f.dir))
		})
	}
}

func TestJournal(t *testing.T) {
	ctx := setupTestContext(t)
	reg, err := adapter.NewRegistry([]adapter.Registration{{Name: "files", Scheme: "oil"}})
	require.NoError(t, err)
	a, _ := reg.Get("files")

	j := NewJournal()
	action := transfer.Action{Kind: transfer.Delete, Source: "oil:///a", EntryType: resource.File}
	require.NoError(t, j.Execute(ctx, a, action))

	assert.Equal(t, []JournalEntry{{Adapter: "files", Action: action}}, j.Entries())
}
