// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"errors"
	"slices"

	"github.com/charmbracelet/huh"
)

// InitAnswers holds the values collected by the init form.
type InitAnswers struct {
	SchemaPath   string
	Format       string
	Collection   string
	Targets      []string
	OutputDir    string
	DateTimeType string
	GoPackage    string
}

// RunInitForm runs the interactive form for the init command.
// It fills a with user input; values already set are used as defaults.
func RunInitForm(a *InitAnswers, available []string) error {
	options := make([]huh.Option[string], 0, len(available))
	for _, name := range available {
		options = append(options, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Schema format").
				Options(
					huh.NewOption("JSON (recommended)", "json"),
					huh.NewOption("YAML", "yaml"),
				).
				Value(&a.Format),
			huh.NewInput().
				Title("Path for the schema file").
				PlaceholderFunc(func() string {
					if a.Format == "yaml" {
						return "firestore.schema.yaml"
					}
					return "firestore.schema.json"
				}, &a.Format).
				Value(&a.SchemaPath),
			huh.NewInput().
				Title("First collection").
				Placeholder("users").
				Validate(identifierValidator(map[string]struct{}{})).
				Value(&a.Collection),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Targets").
				Options(options...).
				Validate(func(s []string) error {
					if len(s) == 0 {
						return errors.New("select at least one target")
					}
					return nil
				}).
				Value(&a.Targets),
			huh.NewInput().
				Title("Output directory").
				Placeholder("generated").
				Validate(requiredValidator("output directory")).
				Value(&a.OutputDir),
			huh.NewSelect[string]().
				Title("Timestamp fields").
				Options(
					huh.NewOption("SDK Timestamp", "Timestamp"),
					huh.NewOption("Native date type", "Date"),
				).
				Value(&a.DateTimeType),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Go package name").
				Placeholder("models").
				Validate(identifierValidator(map[string]struct{}{})).
				Value(&a.GoPackage),
		).WithHideFunc(func() bool { return !slices.Contains(a.Targets, "go") }),
	).WithTheme(Theme()).Run()
}
