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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	lineIndent  = 4  // spaces to indent document entries
	nameWidth   = 35 // width for the old name
	statusWidth = 10 // width for status text
)

// Mark selects the symbol drawn in front of a formatted line
type Mark int

const (
	MarkRebound Mark = iota
	MarkMerged
	MarkSkipped
	MarkFailed
)

// 🎯 FormatMove formats one document rebind for display
func FormatMove(mark Mark, from, to, status string) string {
	var prefix string
	switch mark {
	case MarkRebound:
		prefix = color.GreenString("✓")
	case MarkMerged:
		prefix = color.BlueString("⟳")
	case MarkSkipped:
		prefix = color.YellowString("⚠")
	case MarkFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	return fmt.Sprintf("%s%s %s %s → %s",
		strings.Repeat(" ", lineIndent),
		prefix,
		fmt.Sprintf("%-*s", statusWidth, status),
		fmt.Sprintf("%-*s", nameWidth, from),
		to,
	)
}
