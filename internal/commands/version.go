// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gatsbylabs/malt/internal/version"
)

type versionOptions struct {
	short bool
}

func newVersionCmd() *cobra.Command {
	opts := &versionOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the malt version",
		Example: `  # Full build information
  malt version

  # Version number only
  malt version --short`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Info()
			if opts.short {
				info = version.Short()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), info)
			return err
		},
	}
	cmd.Flags().BoolVarP(&opts.short, "short", "s", false, "Print the version number only")
	return cmd
}
