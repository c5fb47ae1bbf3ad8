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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/walteh/rebind/cmd/rebind/opts"
	"github.com/walteh/rebind/pkg/document"
	"github.com/walteh/rebind/pkg/operation"
	"github.com/walteh/rebind/pkg/rebind"
	"github.com/walteh/rebind/pkg/resource"
	"github.com/walteh/rebind/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

// NewMoveCmd creates a new move command
func NewMoveCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <file|directory> <src> <dest>",
		Short: "Record a move and rebind the workspace's open documents",
		Long: `Move resolves the adapter for the move, records it (the I/O itself
happens outside rebind) and rebinds every document of the configured
workspace that named the source under any of its alternate names.
It prints one line per affected document, then the resulting documents
and windows.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			entryType, err := resource.ParseEntryType(args[0])
			if err != nil {
				return err
			}

			runner, err := operation.New(operation.Options{
				Resolver: transfer.NewResolver(opts.Registry),
				Executor: operation.NewJournal(),
				Rebinder: rebind.New(opts.Directory, opts.Registry,
					rebind.WithPathResolver(rebind.LocalPaths{Cwd: opts.Cwd}),
					rebind.WithNotifier(opts.Notifier),
				),
			})
			if err != nil {
				return errors.Errorf("creating runner: %w", err)
			}

			res, err := runner.Run(ctx, transfer.Action{
				Kind:      transfer.Move,
				Source:    args[1],
				Dest:      args[2],
				EntryType: entryType,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "moved %s with adapter %s\n", entryType, res.Adapter.Name())
			if len(res.Report.Outcomes) > 0 {
				fmt.Fprintln(out, res.Report.String())
			}
			printDirectory(out, opts.Directory)

			if len(res.Report.Failed()) > 0 {
				return errors.Errorf("%d document(s) could not be rebound: %w", len(res.Report.Failed()), res.Report.Err())
			}
			opts.Notifier.Info(ctx, fmt.Sprintf("rebound %d document(s)", len(res.Report.Rebound())))
			return nil
		},
	}

	return cmd
}

func printDirectory(out io.Writer, dir *document.Directory) {
	docs := dir.List()
	names := make(map[string]string, len(docs))

	fmt.Fprintln(out, "documents:")
	for _, doc := range docs {
		flags := doc.Kind.String()
		if doc.Dirty {
			flags += ", dirty"
		}
		name := doc.Name
		if name == "" {
			name = "[unnamed]"
		}
		names[doc.ID.String()] = name
		fmt.Fprintf(out, "  %s (%s)\n", name, flags)
	}

	windows := dir.Windows()
	if len(windows) == 0 {
		return
	}
	fmt.Fprintln(out, "windows:")
	for i, w := range windows {
		fmt.Fprintf(out, "  %d: %s\n", i+1, names[w.Document.String()])
	}
}
