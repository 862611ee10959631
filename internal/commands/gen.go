// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gatsbylabs/malt/internal/batch"
	"github.com/gatsbylabs/malt/internal/prompts"
	"github.com/gatsbylabs/malt/internal/session"
	"github.com/gatsbylabs/malt/internal/translate"
)

type genOptions struct {
	format         string
	outDir         string
	pkg            string
	concurrency    int
	strict         bool
	dryRun         bool
	nonInteractive bool
}

func newGenCmd(translators translate.Register, preRun func(*cobra.Command, []string) error) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen [paths...]",
		Short: "Generate typed models from schema files",
		Long: fmt.Sprintf(`Generate typed models from mongoose schema documents.

Directories are searched recursively for .yaml, .yml and .json files. Each
input produces one output file, written to __generated__ next to the input
unless an output directory is set.

Available formats: %s`, strings.Join(translators.Available(), ", ")),
		Example: `  # Interactive mode
  malt gen

  # TypeScript interfaces next to every schema under ./schemas
  malt gen ./schemas --non-interactive

  # Go structs into a single directory
  malt gen schemas/user.yaml --format gotypes --out internal/models --package models`,
		PreRunE: preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd, translators, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("Output format (%s)", strings.Join(translators.Available(), ", ")))
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (default: __generated__ next to each input)")
	cmd.Flags().StringVar(&opts.pkg, "package", "", "Package name for formats that need one")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "j", 0, "Number of files processed in parallel")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail on references to schemas not declared earlier")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Resolve and translate without writing files")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts (requires paths)")

	return cmd
}

func runGen(cmd *cobra.Command, translators translate.Register, opts *genOptions, paths []string) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}
	cfg := ctx.Config

	format := cfg.Format
	if opts.format != "" {
		format = opts.format
	}
	outDir := cfg.OutDir
	if cmd.Flags().Changed("out") {
		outDir = opts.outDir
	}

	// Prompt for any missing values
	if len(paths) == 0 {
		if opts.nonInteractive {
			return errors.New("non-interactive mode requires at least one path")
		}
		input := "."
		if err := prompts.RunGenerateForm(&input, &format, &outDir, translators.Available()); err != nil {
			return err
		}
		paths = []string{input}
	}

	translator, err := translators.Get(format)
	if err != nil {
		return fmt.Errorf("unsupported format %q. Available formats: %s",
			format, strings.Join(translators.Available(), ", "))
	}

	target := cfg.Target()
	if opts.pkg != "" {
		target.Package = opts.pkg
	}
	resolveOpts := cfg.ResolveOptions()
	if opts.strict {
		resolveOpts.StrictReferences = true
	}
	concurrency := cfg.Concurrency
	if opts.concurrency > 0 {
		concurrency = opts.concurrency
	}

	runner := batch.New(batch.Options{
		Translator:  translator,
		Target:      target,
		Resolve:     resolveOpts,
		OutDir:      outDir,
		Concurrency: concurrency,
		DryRun:      opts.dryRun,
	}, ctx.Logger)

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Generating %s from %s...\n", format, strings.Join(paths, ", "))

	results, err := runner.Run(cmd.Context(), paths)
	if err != nil && results == nil {
		return err
	}

	var written []prompts.ResultField
	var failures []prompts.ResultField
	for _, res := range results {
		if res.Output != "" {
			written = append(written, prompts.ResultField{Label: res.Input, Value: res.Output})
		}
		if res.Err != nil {
			failures = append(failures, prompts.ResultField{Label: res.Input, Value: res.Err.Error()})
		}
	}

	verb := "Generated"
	if opts.dryRun {
		verb = "Would generate"
	}
	prompts.FprintResult(out, written, fmt.Sprintf("%s %d file(s)", verb, len(written)))
	prompts.FprintFailures(out, failures)

	if err != nil {
		return err
	}
	if n := batch.Failed(results); n > 0 {
		return fmt.Errorf("failed to generate %d of %d file(s)", n, len(results))
	}
	return nil
}
