// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/fireodm/cli/internal/translate"
	"github.com/spf13/cobra"
)

func newTargetsCmd(translators translate.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List available generation targets",
		Example: `  # List targets
  fireodm targets`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range translators.Available() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
