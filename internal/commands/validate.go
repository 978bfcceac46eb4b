// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/fireodm/cli/internal/prompts"
	"github.com/fireodm/cli/internal/session"
	"github.com/fireodm/cli/internal/validate"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the project schema",
		Long: `Validate the configured schema against the structural meta-schema and
Firestore's rules. Every violation is reported.`,
		Example: `  # Validate the schema referenced by fireodm.yaml
  fireodm validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd)
		},
	}
}

func runValidate(cmd *cobra.Command) error {
	logger, err := session.LoggerFromCommand(cmd)
	if err != nil {
		return err
	}

	loaded, err := session.Load(cmd.Context(), logger)
	if err != nil {
		if issues := validate.Issues(err); len(issues) > 0 {
			prompts.PrintIssues(cmd.ErrOrStderr(), issues)
			if errors.Is(err, validate.ErrSemantic) {
				return validate.ErrSemantic
			}
			return validate.ErrStructural
		}
		return err
	}
	ctx := session.From(loaded)

	collections, fields := ctx.Schema.Count()
	targets := make([]string, 0, len(ctx.Config.Outputs))
	for _, o := range ctx.Config.Outputs {
		targets = append(targets, o.Target)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Schema", Value: ctx.Config.Schema},
		{Label: "Schema version", Value: ctx.Schema.Version},
		{Label: "Collections", Value: strconv.Itoa(collections)},
		{Label: "Fields", Value: strconv.Itoa(fields)},
		{Label: "Targets", Value: strings.Join(targets, ", ")},
	}, fmt.Sprintf("%s is valid", ctx.Config.Schema))
	return nil
}
