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
	"sync"

	"github.com/rs/zerolog"
	"github.com/walteh/rebind/pkg/adapter"
	"github.com/walteh/rebind/pkg/rebind"
	"github.com/walteh/rebind/pkg/resource"
	"github.com/walteh/rebind/pkg/transfer"
)

// 🎯 Executor performs the adapter-level I/O of an action
type Executor interface {
	Execute(ctx context.Context, a *adapter.Adapter, action transfer.Action) error
}

// ExecutorFunc adapts a function to Executor
type ExecutorFunc func(ctx context.Context, a *adapter.Adapter, action transfer.Action) error

func (f ExecutorFunc) Execute(ctx context.Context, a *adapter.Adapter, action transfer.Action) error {
	return f(ctx, a, action)
}

// 🔍 Resolver picks the adapter for an action
type Resolver interface {
	Resolve(ctx context.Context, action transfer.Action) (*adapter.Adapter, error)
}

// 🔄 Rebinder rebinds documents after a move
type Rebinder interface {
	UpdateMoved(ctx context.Context, entryType resource.EntryType, src, dest string) *rebind.Report
}

var (
	_ Resolver = (*transfer.Resolver)(nil)
	_ Rebinder = (*rebind.Rebinder)(nil)
)

// 📒 Journal is an Executor that only records what it was asked to do.
// It stands in when the I/O happens outside this process.
type Journal struct {
	mu      sync.Mutex
	entries []JournalEntry
}

// JournalEntry is one recorded action
type JournalEntry struct {
	Adapter string
	Action  transfer.Action
}

// NewJournal creates an empty journal
func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) Execute(ctx context.Context, a *adapter.Adapter, action transfer.Action) error {
	zerolog.Ctx(ctx).Debug().
		Str("adapter", a.Name()).
		Str("kind", string(action.Kind)).
		Str("src", action.Source).
		Str("dest", action.Dest).
		Msg("recording action")

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, JournalEntry{Adapter: a.Name(), Action: action})
	return nil
}

// Entries returns the recorded actions in order
func (j *Journal) Entries() []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]JournalEntry, len(j.entries))
	copy(out, j.entries)
	return out
}
