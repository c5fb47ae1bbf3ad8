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

	"github.com/rs/zerolog"
	"github.com/walteh/rebind/pkg/adapter"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrNoAdapter indicates no adapter owns the action's resource
	ErrNoAdapter = adapter.ErrUnrecognizedResource

	// ErrIncompatibleTransfer indicates neither adapter declares it can transfer to the other
	ErrIncompatibleTransfer = errors.Base("incompatible transfer")
)

// 🧭 Resolver picks the adapter that executes an action. It performs no I/O.
type Resolver struct {
	registry *adapter.Registry
}

// 🏭 NewResolver creates a resolver over registry
func NewResolver(registry *adapter.Registry) *Resolver {
	return &Resolver{registry: registry}
}

// 🔍 Resolve returns the adapter responsible for action.
//
// Cross-adapter moves and copies are executed by whichever side declares the other
// in its TransferTo list, the source side first.
func (r *Resolver) Resolve(ctx context.Context, action Action) (*adapter.Adapter, error) {
	logger := zerolog.Ctx(ctx)

	a, err := r.registry.GetAdapterForURL(ctx, action.Resource())
	if err != nil {
		return nil, errors.Errorf("resolving %s %s: %w", action.Kind, action.Resource(), err)
	}

	if action.Dest == "" || action.Source == "" {
		logger.Debug().Str("adapter", a.Name()).Str("kind", string(action.Kind)).Msg("resolved action")
		return a, nil
	}

	dest, err := r.registry.GetAdapterForURL(ctx, action.Dest)
	if err != nil {
		return nil, errors.Errorf("resolving destination %s: %w", action.Dest, err)
	}
	if dest == a {
		logger.Debug().Str("adapter", a.Name()).Str("kind", string(action.Kind)).Msg("resolved action")
		return a, nil
	}

	switch {
	case a.CanTransferTo(dest.Name()):
		logger.Debug().Str("adapter", a.Name()).Str("dest_adapter", dest.Name()).Msg("source adapter executes transfer")
		return a, nil
	case dest.CanTransferTo(a.Name()):
		logger.Debug().Str("adapter", dest.Name()).Str("src_adapter", a.Name()).Msg("destination adapter executes transfer")
		return dest, nil
	default:
		return nil, errors.WithDetails(
			errors.Errorf("%w: cannot %s from adapter %s to adapter %s", ErrIncompatibleTransfer, action.Kind, a.Name(), dest.Name()),
			"src_adapter", a.Name(),
			"dest_adapter", dest.Name(),
		)
	}
}
