package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/dotwrap/internal/config"
	"github.com/raphi011/dotwrap/internal/gh"
)

func newInstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "install [provider]",
		Short: "Install every configured alias into the provider's CLI",
		Args:  providerArg,
		Long: `Install every alias defined in aliases.toml into the provider's CLI.

Aliases are set in ascending name order with --clobber, so existing
definitions are overwritten. Installation stops at the first failure;
aliases already set stay set.`,
		Example: `  dotwrap install       # install into gh
  dotwrap install gh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := providerFromArgs(args)
			if err != nil {
				return err
			}
			client := gh.NewClient()
			if err := client.Check(); err != nil {
				return err
			}
			aliases, err := loadAliases(provider)
			if err != nil {
				return err
			}
			return runInstall(cmd.Context(), client, aliases)
		},
	}
}

// runInstall sets every alias in ascending name order, stopping at the
// first failure. Aliases set before the failure are not rolled back.
func runInstall(ctx context.Context, client *gh.Client, aliases map[string]string) error {
	for _, name := range config.SortedNames(aliases) {
		if err := client.SetAlias(ctx, name, aliases[name]); err != nil {
			return fmt.Errorf("gh alias set failed for %s: %w", name, err)
		}
	}
	return nil
}
