// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package pipeline runs schema loading, validation and code generation.
package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fireodm/cli/internal/config"
	"github.com/fireodm/cli/internal/schema"
	"github.com/fireodm/cli/internal/translate"
	"github.com/fireodm/cli/internal/validate"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Output is one target to generate and the directory its files go to.
type Output struct {
	Target  string
	Dir     string
	Options translate.Options
}

// Result holds the files rendered for one output.
type Result struct {
	Output Output
	Files  []translate.File
}

// Load reads the schema at path in fsys, validates its structure, transforms
// it and runs the Firestore semantic checks. No schema is returned unless
// every check passes.
func Load(fsys fs.FS, path string, logger *zap.Logger) (*schema.Schema, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	doc, err := schema.NewLoader(fsys).LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema: %w", err)
	}

	structural, err := validate.NewStructural(validate.DefaultMetaSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to build meta-schema: %w", err)
	}
	if err := structural.Validate(doc.Value); err != nil {
		logger.Debug("structural validation failed",
			zap.String("schema", path),
			zap.Int("issues", len(validate.Issues(err))))
		return nil, err
	}

	s := schema.Transform(doc)
	if err := validate.NewSemantic(logger).Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Outputs converts configured outputs to pipeline outputs. Relative paths
// are resolved against baseDir.
func Outputs(outputs []config.Output, baseDir string) ([]Output, error) {
	result := make([]Output, 0, len(outputs))
	for _, o := range outputs {
		opts, err := translate.ParseOptions(o.Options)
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", o.Target, err)
		}
		dir := o.Path
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(baseDir, dir)
		}
		result = append(result, Output{Target: o.Target, Dir: dir, Options: opts})
	}
	return result, nil
}

// Render runs every output's translator concurrently against the same
// schema. It fails if any translator fails.
func Render(ctx context.Context, s *schema.Schema, outputs []Output, reg translate.Register, logger *zap.Logger) ([]Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, len(outputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, out := range outputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tr, err := reg.Get(out.Target)
			if err != nil {
				return err
			}
			files, err := tr.Translate(s, out.Options)
			if err != nil {
				return fmt.Errorf("target %s: %w", out.Target, err)
			}
			logger.Debug("rendered target",
				zap.String("target", out.Target),
				zap.Int("files", len(files)))
			results[i] = Result{Output: out, Files: files}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Write writes every rendered file below its output directory.
func Write(results []Result, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, r := range results {
		if err := os.MkdirAll(r.Output.Dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", r.Output.Dir, err)
		}
		for _, f := range r.Files {
			path := filepath.Join(r.Output.Dir, filepath.FromSlash(f.Name))
			if err := os.WriteFile(path, f.Data, 0o644); err != nil { //nolint:gosec // generated sources are world-readable
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			logger.Info("wrote file", zap.String("path", path), zap.String("target", r.Output.Target))
		}
	}
	return nil
}

// Generate renders every output and writes the files only after all outputs
// rendered successfully.
func Generate(ctx context.Context, s *schema.Schema, outputs []Output, reg translate.Register, logger *zap.Logger) ([]Result, error) {
	results, err := Render(ctx, s, outputs, reg, logger)
	if err != nil {
		return nil, err
	}
	if err := Write(results, logger); err != nil {
		return nil, err
	}
	return results, nil
}
