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

package rebind

import (
	"strings"

	"github.com/google/uuid"
	"github.com/walteh/rebind/pkg/document"
	"github.com/walteh/rebind/pkg/notify"
	"github.com/walteh/rebind/pkg/resource"
	"gitlab.com/tozd/go/errors"
)

// 📊 Status is the result of rebinding one document
type Status int

const (
	StatusUnknown   Status = iota
	StatusRebound          // Renamed in place
	StatusMerged           // Folded into the document already bound to the new name
	StatusUnchanged        // Already bound to the new name
	StatusCollision        // Both sides had unsaved changes, nothing changed
	StatusFailed           // Any other error
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusRebound:
		return "rebound"
	case StatusMerged:
		return "merged"
	case StatusUnchanged:
		return "unchanged"
	case StatusCollision:
		return "collision"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

func statusFor(res document.Resolution, err error) Status {
	switch {
	case errors.Is(err, document.ErrIdentityCollision):
		return StatusCollision
	case err != nil:
		return StatusFailed
	case res == document.Renamed:
		return StatusRebound
	case res == document.Merged:
		return StatusMerged
	default:
		return StatusUnchanged
	}
}

// 📄 Outcome records what happened to one document
type Outcome struct {
	Document uuid.UUID
	From     string
	To       string
	Status   Status
	Err      error
}

func (o Outcome) mark() notify.Mark {
	switch o.Status {
	case StatusRebound:
		return notify.MarkRebound
	case StatusMerged:
		return notify.MarkMerged
	case StatusCollision:
		return notify.MarkSkipped
	case StatusFailed:
		return notify.MarkFailed
	default:
		return -1
	}
}

// String formats the outcome as one display line
func (o Outcome) String() string {
	return notify.FormatMove(o.mark(), o.From, o.To, o.Status.String())
}

// 📋 Report collects the outcomes of one rebind pass, in visit order
type Report struct {
	EntryType resource.EntryType
	Source    string
	Dest      string
	Outcomes  []Outcome
}

func (r *Report) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Failed returns the outcomes that left the document untouched because of an error
func (r *Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Rebound returns the outcomes that changed a document's identity
func (r *Report) Rebound() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusRebound || o.Status == StatusMerged {
			out = append(out, o)
		}
	}
	return out
}

// Err joins every per-document error, or returns nil
func (r *Report) Err() error {
	var errs []error
	for _, o := range r.Failed() {
		errs = append(errs, o.Err)
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

// String renders one line per outcome
func (r *Report) String() string {
	var sb strings.Builder
	for i, o := range r.Outcomes {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(o.String())
	}
	return sb.String()
}
