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

	"github.com/rs/zerolog"
	"github.com/walteh/rebind/pkg/adapter"
	"github.com/walteh/rebind/pkg/rebind"
	"github.com/walteh/rebind/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains the collaborators of a runner
type Options struct {
	Resolver Resolver
	Executor Executor
	Rebinder Rebinder
	// Async runs the executor in its own goroutine. A cancelled context is
	// logged but the runner still waits for the executor, and a move it
	// completes is rebound.
	Async bool
}

// 🏃 Runner executes actions
type Runner struct {
	resolver Resolver
	executor Executor
	rebinder Rebinder
	async    bool
}

// 📋 Result is what running one action did
type Result struct {
	Action  transfer.Action
	Adapter *adapter.Adapter
	// Report is set for moves only
	Report *rebind.Report
}

// 🏗️ New creates a runner with the given options
func New(opts Options) (*Runner, error) {
	if opts.Resolver == nil {
		return nil, errors.Errorf("resolver is required")
	}
	if opts.Executor == nil {
		return nil, errors.Errorf("executor is required")
	}
	if opts.Rebinder == nil {
		return nil, errors.Errorf("rebinder is required")
	}
	return &Runner{
		resolver: opts.Resolver,
		executor: opts.Executor,
		rebinder: opts.Rebinder,
		async:    opts.Async,
	}, nil
}

// 🏃 Run resolves, executes and, for moves, rebinds. A failure before or during
// execution leaves every document untouched.
func (r *Runner) Run(ctx context.Context, action transfer.Action) (*Result, error) {
	logger := zerolog.Ctx(ctx)

	if err := action.Validate(); err != nil {
		return nil, errors.Errorf("validating action: %w", err)
	}

	a, err := r.resolver.Resolve(ctx, action)
	if err != nil {
		return nil, err
	}

	if err := r.execute(ctx, a, action); err != nil {
		return nil, errors.Errorf("executing %s with adapter %s: %w", action.Kind, a.Name(), err)
	}

	res := &Result{Action: action, Adapter: a}
	if action.Kind != transfer.Move {
		return res, nil
	}

	res.Report = r.rebinder.UpdateMoved(ctx, action.EntryType, action.Source, action.Dest)
	logger.Debug().
		Int("rebound", len(res.Report.Rebound())).
		Int("failed", len(res.Report.Failed())).
		Msg("move finished")
	return res, nil
}

func (r *Runner) execute(ctx context.Context, a *adapter.Adapter, action transfer.Action) error {
	if !r.async {
		return r.executor.Execute(ctx, a, action)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- r.executor.Execute(ctx, a, action)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger := zerolog.Ctx(ctx)
	logger.Debug().Err(ctx.Err()).Str("kind", string(action.Kind)).Msg("context cancelled, waiting for executor")

	if err := <-errCh; err != nil {
		return errors.Errorf("operation cancelled: %w", errors.Join(ctx.Err(), err))
	}
	logger.Warn().Str("kind", string(action.Kind)).Msg("operation completed after cancellation")
	return nil
}
