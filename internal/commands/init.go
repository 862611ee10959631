// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gatsbylabs/malt/internal/config"
	"github.com/gatsbylabs/malt/internal/prompts"
	"github.com/gatsbylabs/malt/internal/translate"
)

type initOptions struct {
	format         string
	outDir         string
	pkg            string
	interfaceStyle string
	enumStyle      string
	timestamps     bool
	nonInteractive bool
}

func newInitCmd(translators translate.Register) *cobra.Command {
	opts := &initOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new malt project",
		Long:  `Initialize a new malt project with a .malt.yaml configuration file.`,
		Example: `  # Interactive mode
  malt init

  # Non-interactive
  malt init --format gotypes --package models --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", defaults.Format, "Default output format")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Default output directory")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "Package name for formats that need one")
	cmd.Flags().StringVar(&opts.interfaceStyle, "interface-style", defaults.InterfaceStyle, "Interface name style")
	cmd.Flags().StringVar(&opts.enumStyle, "enum-style", defaults.EnumStyle, "Enum name style")
	cmd.Flags().BoolVar(&opts.timestamps, "timestamps", false, "Add createdAt/updatedAt to every schema")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts")

	return cmd
}

func runInit(cmd *cobra.Command, translators translate.Register, opts *initOptions) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check that the current directory isn't already initialized
	cfgPath := filepath.Join(cwd, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists; project already initialized", config.FileName)
	}

	cfg := &config.Config{
		Version:        config.CurrentConfigVersion,
		Format:         opts.format,
		OutDir:         opts.outDir,
		Package:        opts.pkg,
		InterfaceStyle: opts.interfaceStyle,
		EnumStyle:      opts.enumStyle,
		Timestamps:     opts.timestamps,
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(cfg, translators.Available()); err != nil {
			return err
		}
	}

	if _, err := translators.Get(cfg.Format); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.FprintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Config", Value: cfgPath},
		{Label: "Format", Value: cfg.Format},
		{Label: "Timestamps", Value: strconv.FormatBool(cfg.Timestamps)},
	}, "Initialization completed")
	return nil
}
