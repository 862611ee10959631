// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/gatsbylabs/malt/internal/config"
)

var (
	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidEnv indicates a MALT_* variable or the .env file is invalid.
	ErrInvalidEnv = errors.New("invalid environment")
)

// DotEnvFileName is merged under the process environment when present.
const DotEnvFileName = ".env"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration.
type Context struct {
	// Config is the file configuration with the environment applied.
	Config *config.Config

	// Dir is the directory the configuration was looked up in.
	Dir string

	// Logger receives diagnostics; never nil.
	Logger *log.Logger
}

// Load loads the project context from the current working directory and
// returns a new context.Context with the malt Context stored in it. A
// missing .malt.yaml yields the defaults.
func Load(ctx context.Context, getenv func(string) string, logger *log.Logger) (context.Context, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	configPath := filepath.Join(cwd, config.FileName)
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	getenv, err = config.WithDotEnv(getenv, filepath.Join(cwd, DotEnvFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	logger.Debug("loaded configuration", "dir", cwd, "format", cfg.Format)

	return context.WithValue(ctx, contextKey{}, &Context{
		Config: cfg,
		Dir:    cwd,
		Logger: logger,
	}), nil
}

// From extracts the malt Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if maltCtx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return maltCtx
	}
	return nil
}
