// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fireodm/cli/internal/config"
	"github.com/fireodm/cli/internal/pipeline"
	"github.com/fireodm/cli/internal/prompts"
	"github.com/fireodm/cli/internal/session"
	"github.com/fireodm/cli/internal/translate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type initOptions struct {
	prompts.InitAnswers
	targets        string
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new fireodm project",
		Long: `Initialize a new fireodm project with a fireodm.yaml configuration file
and a starter Firestore schema.`,
		Example: `  # Interactive mode
  fireodm init

  # Non-interactive
  fireodm init --targets typescript-client,dart-client --non-interactive
  fireodm init --schema schema.yaml --format yaml --targets go --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.SchemaPath, "schema", "s", "", "Path for the schema file")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "json", "Schema format (json or yaml)")
	cmd.Flags().StringVarP(&opts.Collection, "collection", "c", "users", "Name of the starter collection")
	cmd.Flags().StringVarP(&opts.targets, "targets", "t", "", fmt.Sprintf("Targets, comma-separated (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "generated", "Output directory; each target writes to a subdirectory")
	cmd.Flags().StringVar(&opts.DateTimeType, "date-time-type", string(translate.DateTimeTimestamp), "Timestamp representation (Timestamp or Date)")
	cmd.Flags().StringVar(&opts.GoPackage, "go-package", "models", "Package name for the go target")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires --targets)")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	logger, err := session.LoggerFromCommand(cmd)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, session.ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", session.ConfigFileName)
	}

	for _, t := range strings.Split(opts.targets, ",") {
		if t = strings.TrimSpace(t); t != "" {
			opts.Targets = append(opts.Targets, t)
		}
	}

	if opts.nonInteractive {
		if len(opts.Targets) == 0 {
			return errors.New("non-interactive mode requires --targets")
		}
	} else if err := prompts.RunInitForm(&opts.InitAnswers, translators.Available()); err != nil {
		return err
	}

	for _, t := range opts.Targets {
		if _, err := translators.Get(t); err != nil {
			return fmt.Errorf("%w. Available targets: %s", err, strings.Join(translators.Available(), ", "))
		}
	}
	if opts.Format != "json" && opts.Format != "yaml" {
		return fmt.Errorf("unsupported format %q: must be json or yaml", opts.Format)
	}
	if opts.SchemaPath == "" {
		opts.SchemaPath = "firestore.schema." + opts.Format
	}

	cfg := config.Config{
		Version: config.CurrentConfigVersion,
		Schema:  opts.SchemaPath,
	}
	for _, t := range opts.Targets {
		out := config.Output{
			Target:  t,
			Path:    filepath.ToSlash(filepath.Join(opts.OutputDir, t)),
			Options: map[string]any{"dateTimeType": opts.DateTimeType},
		}
		if t == "go" {
			out.Options["package"] = opts.GoPackage
		}
		cfg.Outputs = append(cfg.Outputs, out)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	schemaPath := opts.SchemaPath
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(cwd, schemaPath)
	}
	if _, err := os.Stat(schemaPath); err == nil {
		return fmt.Errorf("schema file already exists: %s", opts.SchemaPath)
	}
	data, err := starterSchema(opts.Collection, opts.Format)
	if err != nil {
		return fmt.Errorf("failed to encode starter schema: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(schemaPath), 0o750); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}
	if err := os.WriteFile(schemaPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	if _, err := pipeline.Load(os.DirFS(filepath.Dir(schemaPath)), filepath.Base(schemaPath), logger); err != nil {
		return fmt.Errorf("starter schema is invalid: %w", err)
	}

	if err := cfg.Save(configPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: session.ConfigFileName},
		{Label: "Schema", Value: opts.SchemaPath},
		{Label: "Targets", Value: strings.Join(opts.Targets, ", ")},
	}, "Initialization completed")
	return nil
}

// starterSchema returns a minimal valid schema with one collection.
func starterSchema(collection, format string) ([]byte, error) {
	doc := map[string]any{
		"schemaVersion": "1.0.0",
		"collections": map[string]any{
			collection: map[string]any{
				"description": "Documents of the " + collection + " collection",
				"fields": map[string]any{
					"createdAt": map[string]any{"type": "timestamp", "defaultValue": "serverTimestamp"},
					"name":      map[string]any{"type": "string", "required": true},
				},
			},
		},
	}
	if format == "yaml" {
		return yaml.Marshal(doc)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
