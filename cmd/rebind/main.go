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
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/rebind/cmd/rebind/commands"
	"github.com/walteh/rebind/cmd/rebind/opts"
	"github.com/walteh/rebind/pkg/notify"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	userNotifier := notify.NewUserNotifier(os.Stderr)
	rootOpts := &opts.RootOpts{Notifier: userNotifier}

	rootCmd := &cobra.Command{
		Use:   "rebind",
		Short: "Keep open documents bound to their resources across adapters",
		Long: `rebind resolves which adapter executes a filesystem-like action and,
after a move, rebinds every open document that named the moved resource
under any of its alternate names.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cmdCtx, err := loadRootOpts(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			cmd.SetContext(cmdCtx)
			return nil
		},
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewAdaptersCmd(rootOpts),
		commands.NewResolveCmd(rootOpts),
		commands.NewMoveCmd(rootOpts),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userNotifier.Error(ctx, "command failed", err)
		os.Exit(1)
	}
}
