package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/dotwrap/internal/config"
	"github.com/raphi011/dotwrap/internal/gh"
	"github.com/raphi011/dotwrap/internal/output"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [provider]",
		Short: "Show which dotwrap aliases the provider's CLI has installed",
		Args:  providerArg,
		Long: `Ask the provider's CLI for its alias list and print the dw_-prefixed
entries, one tagged line each. Aliases not managed by dotwrap are omitted.`,
		Example: `  dotwrap doctor
  dotwrap doctor gh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := providerFromArgs(args); err != nil {
				return err
			}
			client := gh.NewClient()
			if err := client.Check(); err != nil {
				return err
			}
			return runDoctor(cmd.Context(), client)
		},
	}
}

// runDoctor lists gh's aliases and echoes the lines whose content, after
// stripping leading whitespace, starts with the dotwrap prefix.
func runDoctor(ctx context.Context, client *gh.Client) error {
	listing, err := client.ListAliases(ctx)
	if err != nil {
		return fmt.Errorf("gh alias list failed: %w", err)
	}

	out := output.FromContext(ctx)
	for line := range strings.Lines(listing) {
		line = strings.TrimRight(line, "\r\n")
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), config.AliasPrefix) {
			if err := out.Line(line); err != nil {
				return err
			}
		}
	}
	return nil
}
