// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FromCommand extracts the fireodm Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the fireodm Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad is a PreRunE function that loads the project context and
// stores it in the command's context.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	logger, err := LoggerFromCommand(cmd)
	if err != nil {
		return err
	}
	ctx, err := Load(cmd.Context(), logger)
	if err != nil {
		return err
	}
	cmd.SetContext(ctx)
	return nil
}

// LoggerFromCommand builds the command logger. It logs warnings and errors
// to stderr, and everything when the --verbose flag is set.
func LoggerFromCommand(cmd *cobra.Command) (*zap.Logger, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return NewLogger(verbose)
}

// NewLogger builds a human-readable console logger.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}
