// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fireodm/cli/internal/pipeline"
	"github.com/fireodm/cli/internal/prompts"
	"github.com/fireodm/cli/internal/session"
	"github.com/fireodm/cli/internal/translate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type describeOptions struct {
	target string
	output string
}

func newDescribeCmd(translators translate.Register) *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe [collection-path]",
		Short: "Show the derived types, operators and updates of a collection",
		Long: `Show the metadata a target derives for one collection: the model name,
each field's target type and legal query operators, and every update
path with its accepted value type.`,
		Example: `  # Interactive mode
  fireodm describe

  # Describe a subcollection for the Dart target
  fireodm describe users/{userId}/posts --target dart-client

  # Machine-readable output
  fireodm describe users --target go -o json`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: session.PreRunLoad,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runDescribe(cmd, translators, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.target, "target", "t", "", fmt.Sprintf("Target (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func runDescribe(cmd *cobra.Command, translators translate.Register, path string, opts *describeOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	target := opts.target
	if err := prompts.RunDescribeForm(&path, &target, ctx.Schema.Paths(), translators.Available()); err != nil {
		return err
	}

	tr, err := translators.Get(target)
	if err != nil {
		return err
	}
	profiled, ok := tr.(translate.Profiled)
	if !ok {
		return fmt.Errorf("target %s does not expose a type profile", target)
	}

	// Use the options of the first configured output of this target, if any.
	options := translate.Options{DateTimeType: translate.DateTimeTimestamp}
	if configured := ctx.Config.OutputsFor(target); len(configured) > 0 {
		outputs, err := pipeline.Outputs(configured[:1], ctx.Dir)
		if err != nil {
			return err
		}
		options = outputs[0].Options
	}

	m, err := translate.Describe(ctx.Schema, path, profiled.Resolver(), options)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch opts.output {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(describeView(target, m))

	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		defer func() { _ = enc.Close() }()
		return enc.Encode(describeView(target, m))

	default:
		printModel(out, target, m)
		return nil
	}
}

type fieldView struct {
	Name      string            `json:"name" yaml:"name"`
	Type      string            `json:"type" yaml:"type"`
	Required  bool              `json:"required" yaml:"required"`
	Operators map[string]string `json:"operators" yaml:"operators"`
}

type updateView struct {
	Path      string `json:"path" yaml:"path"`
	Method    string `json:"method" yaml:"method"`
	ValueType string `json:"valueType" yaml:"valueType"`
}

func describeView(target string, m *translate.Model) map[string]any {
	fields := make([]fieldView, 0, len(m.Fields))
	for _, f := range m.Fields {
		ops := make(map[string]string, len(f.Operators))
		for _, op := range f.Operators {
			ops[string(op.Op)] = op.ValueType
		}
		fields = append(fields, fieldView{Name: f.Name, Type: f.Type, Required: f.Required, Operators: ops})
	}
	updates := make([]updateView, 0, len(m.Updates))
	for _, u := range m.Updates {
		updates = append(updates, updateView{Path: u.Path, Method: u.Name, ValueType: u.ValueType})
	}
	subs := make([]string, 0, len(m.Subcollections))
	for _, s := range m.Subcollections {
		subs = append(subs, s.CollectionID)
	}
	return map[string]any{
		"target":         target,
		"model":          m.Name,
		"path":           m.PathPattern,
		"fields":         fields,
		"updates":        updates,
		"subcollections": subs,
	}
}

func printModel(w io.Writer, target string, m *translate.Model) {
	fmt.Fprintf(w, "Model:       %s (%s)\n", m.Name, target)
	fmt.Fprintf(w, "Path:        %s\n", m.PathPattern)
	if m.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", m.Description)
	}
	if m.Parent != nil {
		fmt.Fprintf(w, "Parent:      %s\n", m.Parent.Name)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Fields:")
	for _, f := range m.Fields {
		required := ""
		if f.Required {
			required = " (required)"
		}
		fmt.Fprintf(w, "  - %s: %s%s\n", f.Name, f.Type, required)
		for _, g := range translate.GroupOperators(f.Operators) {
			ops := make([]string, len(g.Ops))
			for i, op := range g.Ops {
				ops[i] = string(op)
			}
			fmt.Fprintf(w, "      %s -> %s\n", strings.Join(ops, " "), g.ValueType)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Updates:")
	for _, u := range m.Updates {
		fmt.Fprintf(w, "  - %s (%s): %s\n", u.Path, u.Name, u.ValueType)
	}

	if len(m.Subcollections) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Subcollections:")
		for _, s := range m.Subcollections {
			fmt.Fprintf(w, "  - %s (%s)\n", s.CollectionID, s.Name)
		}
	}
}
