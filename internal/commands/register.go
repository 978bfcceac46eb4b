// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/fireodm/cli/internal/translate"
	"github.com/fireodm/cli/internal/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(translators translate.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fireodm",
		Short: "Generate typed Firestore ODM code from a schema",
		Long: `fireodm validates a Firestore schema and generates typed models,
collection references, query builders and update builders for every
configured target.`,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetVersionTemplate(version.Info() + "\n")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log debug output to stderr")

	rootCmd.AddCommand(
		newInitCmd(translators),
		newValidateCmd(),
		newGenerateCmd(translators),
		newDescribeCmd(translators),
		newTargetsCmd(translators),
		newVersionCmd(),
	)

	return rootCmd
}
