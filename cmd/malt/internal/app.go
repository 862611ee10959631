// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/gatsbylabs/malt/internal/commands"
	"github.com/gatsbylabs/malt/internal/translate/formats"
)

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup, arguments).
func Run(ctx context.Context, getenv func(string) string, args []string) error {
	rootCmd := commands.NewRootCmd(formats.Builtin(), getenv)
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}
