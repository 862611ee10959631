// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package session

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// FromCommand extracts the malt Context from a cobra.Command's context.
// Returns nil if no Context is stored.
func FromCommand(cmd *cobra.Command) *Context {
	return From(cmd.Context())
}

// RequireFromCommand extracts the malt Context from a cobra.Command's context,
// returning an error if not found.
func RequireFromCommand(cmd *cobra.Command) (*Context, error) {
	ctx := FromCommand(cmd)
	if ctx == nil {
		return nil, errors.New("project context not loaded")
	}
	return ctx, nil
}

// PreRunLoad returns a PersistentPreRunE function that loads the project
// context and stores it in the command's context. logger is called at run
// time so flags are parsed before it is built.
func PreRunLoad(getenv func(string) string, logger func() *log.Logger) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		ctx, err := Load(cmd.Context(), getenv, logger())
		if err != nil {
			return err
		}
		cmd.SetContext(ctx)
		return nil
	}
}
