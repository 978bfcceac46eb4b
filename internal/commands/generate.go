// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fireodm/cli/internal/pipeline"
	"github.com/fireodm/cli/internal/prompts"
	"github.com/fireodm/cli/internal/session"
	"github.com/fireodm/cli/internal/translate"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	target string
	dryRun bool
}

func newGenerateCmd(translators translate.Register) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate ODM code for the configured outputs",
		Long: fmt.Sprintf(`Generate ODM code for every output in fireodm.yaml. All targets are
rendered before any file is written, so a failing target leaves the
output directories untouched.

Available targets: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Generate every configured output
  fireodm generate

  # Generate a single target
  fireodm generate --target dart-client

  # List the files that would be written
  fireodm generate --dry-run`,
		Args:    cobra.NoArgs,
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", "Only generate outputs of this target")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Render without writing files")

	return cmd
}

func runGenerate(cmd *cobra.Command, translators translate.Register, opts *generateOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	configured := ctx.Config.OutputsFor(opts.target)
	if len(configured) == 0 {
		return fmt.Errorf("no outputs configured for target %q", opts.target)
	}
	outputs, err := pipeline.Outputs(configured, ctx.Dir)
	if err != nil {
		return err
	}

	var results []pipeline.Result
	if opts.dryRun {
		results, err = pipeline.Render(cmd.Context(), ctx.Schema, outputs, translators, ctx.Logger)
	} else {
		results, err = pipeline.Generate(cmd.Context(), ctx.Schema, outputs, translators, ctx.Logger)
	}
	if err != nil {
		return err
	}

	var fields []prompts.ResultField
	count := 0
	for _, r := range results {
		for _, f := range r.Files {
			path := filepath.Join(r.Output.Dir, filepath.FromSlash(f.Name))
			if rel, err := filepath.Rel(ctx.Dir, path); err == nil {
				path = rel
			}
			fields = append(fields, prompts.ResultField{Label: r.Output.Target, Value: path})
			count++
		}
	}

	msg := fmt.Sprintf("Generated %d file(s) for %d output(s)", count, len(results))
	if opts.dryRun {
		msg = fmt.Sprintf("Rendered %d file(s) for %d output(s), nothing written", count, len(results))
	}
	prompts.PrintResult(cmd.OutOrStdout(), fields, msg)
	return nil
}
