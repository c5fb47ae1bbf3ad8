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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestUserNotifier(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	var buf bytes.Buffer
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	n := NewUserNotifier(&buf)

	n.Info(ctx, "moved 3 documents")
	n.Warn(ctx, "identity collision between a.txt and b.txt")
	n.Error(ctx, "rebind failed", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "moved 3 documents")
	assert.Contains(t, out, "identity collision between a.txt and b.txt")
	assert.Contains(t, out, "rebind failed: "+assert.AnError.Error())
	assert.GreaterOrEqual(t, strings.Count(out, "\n"), 3, "one line per notice")
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	assert.NotPanics(t, func() {
		Discard.Info(ctx, "x")
		Discard.Warn(ctx, "x")
		Discard.Error(ctx, "x", assert.AnError)
	})
}

func TestFormatMove(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name   string
		mark   Mark
		status string
		prefix string
	}{
		{name: "rebound", mark: MarkRebound, status: "rebound", prefix: "    ✓ rebound"},
		{name: "merged", mark: MarkMerged, status: "merged", prefix: "    ⟳ merged"},
		{name: "skipped", mark: MarkSkipped, status: "collision", prefix: "    ⚠ collision"},
		{name: "failed", mark: MarkFailed, status: "failed", prefix: "    ✗ failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FormatMove(tt.mark, "oil:///a/x.txt", "oil:///b/x.txt", tt.status)
			assert.True(t, strings.HasPrefix(line, tt.prefix), "line should start with mark and status: %q", line)
			assert.True(t, strings.HasSuffix(line, "→ oil:///b/x.txt"), "line should end with destination: %q", line)
		})
	}
}
