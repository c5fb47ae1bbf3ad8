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
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/rebind/cmd/rebind/opts"
	"gitlab.com/tozd/go/errors"
)

// NewAdaptersCmd creates a new adapters command
func NewAdaptersCmd(opts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adapters",
		Short: "List registered adapters",
		Long: `Adapters prints every registered adapter with its scheme, the alias
schemes that name the same resources, whether it owns bare local paths
and which adapters it can transfer to.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"NAME", "SCHEME", "ALIASES", "RAW PATHS", "TRANSFER TO"}}
			for _, a := range opts.Registry.Adapters() {
				raw := ""
				if a.RawPaths() {
					raw = "yes"
				}
				data = append(data, []string{
					a.Name(),
					a.Scheme(),
					strings.Join(opts.Registry.AliasSchemes(a.Scheme()), ", "),
					raw,
					strings.Join(a.TransferTo(), ", "),
				})
			}

			out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Errorf("rendering adapters: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}
