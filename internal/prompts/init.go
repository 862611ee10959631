// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"github.com/charmbracelet/huh"

	"github.com/gatsbylabs/malt/internal/config"
	"github.com/gatsbylabs/malt/internal/translate"
)

var goKeywords = []string{
	"break", "case", "chan", "const", "continue", "default", "defer", "else",
	"fallthrough", "for", "func", "go", "goto", "if", "import", "interface",
	"map", "package", "range", "return", "select", "struct", "switch", "type", "var",
}

func styleSelect(title string, value *string) *huh.Select[string] {
	styles := translate.TextStyles()
	options := make([]huh.Option[string], len(styles))
	for i, s := range styles {
		options[i] = huh.NewOption(s, s)
	}
	return huh.NewSelect[string]().Title(title).Options(options...).Value(value)
}

// RunInitForm runs the interactive form for the init command, editing cfg
// in place.
func RunInitForm(cfg *config.Config, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			formatSelect(&cfg.Format, formats),
			huh.NewInput().
				Title("Output directory").
				Description("Leave empty to write next to each schema in __generated__").
				Value(&cfg.OutDir),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Go package name").
				Placeholder("models").
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					return identifierValidator(goKeywords...)(s)
				}).
				Value(&cfg.Package),
		).WithHideFunc(func() bool { return cfg.Format != "gotypes" }),
		huh.NewGroup(
			styleSelect("Interface name style", &cfg.InterfaceStyle),
			styleSelect("Enum name style", &cfg.EnumStyle),
			huh.NewConfirm().
				Title("Add createdAt/updatedAt to every schema?").
				Value(&cfg.Timestamps),
		),
	).WithTheme(Theme()).Run()
}
