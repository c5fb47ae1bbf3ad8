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

package notify

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📢 Notifier reports user-visible notices.
//
// Nothing reported here aborts the caller; it is the single channel through which
// unrecognized resources, identity collisions and failed rebinds reach the user.
type Notifier interface {
	// Info reports progress the user may care about
	Info(ctx context.Context, msg string)
	// Warn reports a skipped or degraded operation
	Warn(ctx context.Context, msg string)
	// Error reports a failed operation with its cause
	Error(ctx context.Context, msg string, err error)
}

// 🎯 UserNotifier prints notices with pterm and mirrors them to zerolog
type UserNotifier struct {
	mu   sync.Mutex
	info *pterm.PrefixPrinter
	warn *pterm.PrefixPrinter
	fail *pterm.PrefixPrinter
}

// 🏭 NewUserNotifier creates a notifier writing to w (stderr when nil)
func NewUserNotifier(w io.Writer) *UserNotifier {
	if w == nil {
		w = os.Stderr
	}
	return &UserNotifier{
		info: pterm.Info.WithPrefix(pterm.Prefix{Text: "ℹ️"}).WithWriter(w),
		warn: pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).WithWriter(w),
		fail: pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).WithWriter(w),
	}
}

func (n *UserNotifier) Info(ctx context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.info.Println(msg)
	zerolog.Ctx(ctx).Info().Msg(msg)
}

func (n *UserNotifier) Warn(ctx context.Context, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.warn.Println(msg)
	zerolog.Ctx(ctx).Warn().Msg(msg)
}

func (n *UserNotifier) Error(ctx context.Context, msg string, err error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err != nil {
		n.fail.Printfln("%s: %v", msg, err)
	} else {
		n.fail.Println(msg)
	}
	zerolog.Ctx(ctx).Error().Err(err).Msg(msg)
}

// 🔇 Discard drops every notice
var Discard Notifier = discard{}

type discard struct{}

func (discard) Info(context.Context, string)         {}
func (discard) Warn(context.Context, string)         {}
func (discard) Error(context.Context, string, error) {}
