// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/fireodm/cli/internal/commands"
	"github.com/fireodm/cli/internal/translate"
	"github.com/fireodm/cli/internal/translate/dart"
	"github.com/fireodm/cli/internal/translate/gotypes"
	"github.com/fireodm/cli/internal/translate/markdown"
	"github.com/fireodm/cli/internal/translate/typescript"
)

// Translators returns every built-in target.
func Translators() translate.Register {
	translators := make(translate.Register)
	translators.Add(typescript.NewClientTranslator())
	translators.Add(typescript.NewAdminTranslator())
	translators.Add(&dart.Translator{})
	translators.Add(&gotypes.Translator{})
	translators.Add(&markdown.Translator{})
	return translators
}

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, args).
func Run(ctx context.Context, args []string) error {
	rootCmd := commands.NewRootCmd(Translators())
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
