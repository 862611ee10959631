// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gatsbylabs/malt/internal/translate"
)

func newFormatsCmd(translators translate.Register) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List available output formats",
		Example: `  # List formats
  malt formats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range translators.Available() {
				t, err := translators.Get(name)
				if err != nil {
					return err
				}
				suffix := ""
				if name == translate.DefaultFormat {
					suffix = " (default)"
				}
				if _, err := fmt.Fprintf(out, "%-12s %s%s\n", name, t.FileExtension(), suffix); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
