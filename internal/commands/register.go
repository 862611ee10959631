// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gatsbylabs/malt/internal/session"
	"github.com/gatsbylabs/malt/internal/translate"
)

type rootOptions struct {
	verbose bool
}

// NewRootCmd creates and returns the root command for the CLI. getenv is
// consulted for MALT_* overrides.
func NewRootCmd(translators translate.Register, getenv func(string) string) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "malt",
		Short: "Generate typed models from mongoose schemas",
		Long: `malt reads mongoose-style schema documents (YAML or JSON) and generates
TypeScript interfaces, Avro schemas, Go structs, JSON Schema and more.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Print debug logs to stderr")

	loadSession := session.PreRunLoad(getenv, func() *log.Logger {
		return newLogger(rootCmd.ErrOrStderr(), opts.verbose)
	})

	rootCmd.AddCommand(
		newGenCmd(translators, loadSession),
		newInspectCmd(loadSession),
		newFormatsCmd(translators),
		newInitCmd(translators),
		newVersionCmd(),
	)

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "malt"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
