// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"
)

// RunDescribeForm prompts for the collection path and target when either is
// missing.
func RunDescribeForm(path, target *string, paths, targets []string) error {
	var fields []huh.Field

	if *path == "" {
		options := make([]huh.Option[string], 0, len(paths))
		for _, p := range paths {
			options = append(options, huh.NewOption(p, p))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Select collection to describe").
			Options(options...).
			Filtering(true).
			Value(path).
			Height(10))
	}

	if *target == "" {
		options := make([]huh.Option[string], 0, len(targets))
		for _, t := range targets {
			options = append(options, huh.NewOption(t, t))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Target").
			Options(options...).
			Value(target))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
