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

	"github.com/spf13/cobra"
	"github.com/walteh/rebind/cmd/rebind/opts"
	"github.com/walteh/rebind/pkg/resource"
	"github.com/walteh/rebind/pkg/transfer"
)

// NewResolveCmd creates a new resolve command
func NewResolveCmd(opts *opts.RootOpts) *cobra.Command {
	var entryType string

	cmd := &cobra.Command{
		Use:   "resolve <create|delete|move|copy> <url> [dest]",
		Short: "Print the adapter that would execute an action",
		Long: `Resolve picks the adapter responsible for an action without performing it.
create takes the url to create, delete the url to delete, move and copy
take a source and a destination. Cross-adapter transfers are executed by
whichever adapter declares the other, the source first.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			action, err := parseAction(args, entryType)
			if err != nil {
				return err
			}

			a, err := transfer.NewResolver(opts.Registry).Resolve(cmd.Context(), action)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s://)\n", a.Name(), a.Scheme())
			return nil
		},
	}

	cmd.Flags().StringVarP(&entryType, "type", "t", string(resource.File), "entry type: file or directory")

	return cmd
}

func parseAction(args []string, entryType string) (transfer.Action, error) {
	kind, err := transfer.ParseKind(args[0])
	if err != nil {
		return transfer.Action{}, err
	}
	et, err := resource.ParseEntryType(entryType)
	if err != nil {
		return transfer.Action{}, err
	}

	action := transfer.Action{Kind: kind, EntryType: et}
	switch kind {
	case transfer.Create:
		action.Dest = args[1]
	default:
		action.Source = args[1]
		if len(args) > 2 {
			action.Dest = args[2]
		}
	}
	return action, action.Validate()
}
