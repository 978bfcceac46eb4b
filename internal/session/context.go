// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fireodm/cli/internal/config"
	"github.com/fireodm/cli/internal/pipeline"
	"github.com/fireodm/cli/internal/schema"
	"go.uber.org/zap"
)

var (
	// ErrNotInitialized indicates no fireodm.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a fireodm project (fireodm.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the schema file referenced by config doesn't exist.
	ErrSchemaNotFound = errors.New("schema file not found")

	// ErrInvalidSchema indicates the schema file exists but failed validation.
	ErrInvalidSchema = errors.New("invalid Firestore schema")
)

// ConfigFileName is the name of the fireodm configuration file.
const ConfigFileName = "fireodm.yaml"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the project configuration and the validated schema.
type Context struct {
	// Dir is the project directory containing fireodm.yaml.
	Dir string

	// Config is the validated configuration.
	Config *config.Config

	// Schema is the parsed and validated Firestore schema.
	Schema *schema.Schema

	// Logger is the command logger.
	Logger *zap.Logger
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the fireodm Context stored in it.
func Load(ctx context.Context, logger *zap.Logger) (context.Context, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	configPath := filepath.Join(cwd, ConfigFileName)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	schemaPath := cfg.Schema
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(cwd, schemaPath)
	}
	if _, statErr := os.Stat(schemaPath); statErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaNotFound, statErr)
	}

	logger.Debug("loading schema", zap.String("path", schemaPath))
	s, err := pipeline.Load(os.DirFS(filepath.Dir(schemaPath)), filepath.Base(schemaPath), logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
	}

	fireCtx := &Context{
		Dir:    cwd,
		Config: cfg,
		Schema: s,
		Logger: logger,
	}

	return context.WithValue(ctx, contextKey{}, fireCtx), nil
}

// From extracts the fireodm Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if fireCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return fireCtx
	}
	return nil
}
