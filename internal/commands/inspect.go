// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gatsbylabs/malt/internal/mschema"
	"github.com/gatsbylabs/malt/internal/prompts"
	"github.com/gatsbylabs/malt/internal/resolve"
	"github.com/gatsbylabs/malt/internal/session"
	"github.com/gatsbylabs/malt/internal/translate"
	"github.com/gatsbylabs/malt/internal/translate/model"
	"github.com/gatsbylabs/malt/internal/typemodel"
)

type inspectOptions struct {
	output string
}

func newInspectCmd(preRun func(*cobra.Command, []string) error) *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the resolved type model of a schema file",
		Long: `Resolve a schema document and show the named types it produces:
root records, nested records, enums and unions, with their fields.`,
		Example: `  # Summary of every type
  malt inspect schemas/user.yaml

  # Full model as YAML
  malt inspect schemas/user.yaml --output yaml`,
		Args:    cobra.ExactArgs(1),
		PreRunE: preRun,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runInspect(cmd, ctx, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output style (text, json, yaml)")

	return cmd
}

func runInspect(cmd *cobra.Command, ctx *session.Context, opts *inspectOptions, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	doc, err := mschema.NewLoader(os.DirFS(filepath.Dir(abs))).LoadFile(filepath.Base(abs))
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	m, compileErr := resolve.CompileUnit(path, doc, ctx.Config.ResolveOptions())
	out := cmd.OutOrStdout()

	switch opts.output {
	case "json", "yaml":
		data, err := (&model.Translator{Encoding: model.Encoding(opts.output)}).Translate(path, m, translate.Target{})
		if err != nil {
			return err
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	case "text":
		printModel(cmd, doc, m)
	default:
		return fmt.Errorf("unknown output style %q", opts.output)
	}

	if compileErr != nil {
		var failures []prompts.ResultField
		for _, err := range splitJoined(compileErr) {
			failures = append(failures, prompts.ResultField{Label: schemaOf(err), Value: err.Error()})
		}
		prompts.FprintFailures(cmd.ErrOrStderr(), failures)
		return fmt.Errorf("%d schema(s) failed to resolve", len(failures))
	}
	return nil
}

func printModel(cmd *cobra.Command, doc *mschema.Document, m *typemodel.Model) {
	out := cmd.OutOrStdout()
	summary := []prompts.ResultField{
		{Label: "Roots", Value: strings.Join(m.Roots(), ", ")},
		{Label: "Types", Value: strconv.Itoa(m.Len())},
	}
	names := doc.Names()
	for _, s := range doc.Schemas {
		if deps := s.DependsOn(names); len(deps) > 0 {
			summary = append(summary, prompts.ResultField{Label: s.Name + " uses", Value: strings.Join(deps, ", ")})
		}
	}
	prompts.FprintResult(out, summary, "")

	for t := range m.All() {
		_, _ = fmt.Fprintf(out, "\n%s %s", t.Kind(), typemodel.FullName(t))
		switch t := t.(type) {
		case *typemodel.RecordType:
			_, _ = fmt.Fprintln(out)
			for _, f := range t.Fields {
				marker := ""
				if f.Optional {
					marker = "?"
				}
				_, _ = fmt.Fprintf(out, "  %s%s: %s\n", f.Name, marker, f.Type)
			}
		case *typemodel.EnumType:
			values := make([]string, len(t.Literals))
			for i, l := range t.Literals {
				values[i] = l.Value
			}
			_, _ = fmt.Fprintf(out, " = %s\n", strings.Join(values, " | "))
		case *typemodel.UnionType:
			members := strings.Join(t.Members, " | ")
			if t.Nullable {
				members += " | null"
			}
			_, _ = fmt.Fprintf(out, " = %s\n", members)
		}
	}
}

// splitJoined lists the per-schema errors of a unit.
func splitJoined(err error) []error {
	if _, ok := err.(*resolve.FieldError); ok { //nolint:errorlint // only the top level is split
		return []error{err}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok { //nolint:errorlint // same
		return joined.Unwrap()
	}
	return []error{err}
}

func schemaOf(err error) string {
	var fe *resolve.FieldError
	if errors.As(err, &fe) {
		return fe.Schema
	}
	return "error"
}
