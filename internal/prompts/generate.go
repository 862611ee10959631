// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// formatSelect returns a select field for choosing the output format.
func formatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunGenerateForm asks for the input path, the output format and the
// output directory. Pointers hold the defaults on entry.
func RunGenerateForm(input, format, outDir *string, formats []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema file or directory").
				Placeholder(".").
				Validate(requiredValidator("input path")).
				Value(input),
			formatSelect(format, formats),
			huh.NewInput().
				Title("Output directory").
				Description("Leave empty to write next to each schema in __generated__").
				Value(outDir),
		),
	).WithTheme(Theme()).Run()
}
