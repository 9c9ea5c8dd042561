package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/raphi011/dotwrap/internal/config"
	"github.com/raphi011/dotwrap/internal/gh"
)

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall [provider]",
		Short: "Remove every configured alias from the provider's CLI",
		Args:  providerArg,
		Long: `Remove every alias defined in aliases.toml from the provider's CLI.

Each delete is attempted exactly once in ascending name order. A failed
delete (typically an alias that was never installed) is ignored, so
uninstall succeeds once every deletion has been attempted.`,
		Example: `  dotwrap uninstall       # remove from gh
  dotwrap uninstall gh`,
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
			runUninstall(cmd.Context(), client, aliases)
			return nil
		},
	}
}

// runUninstall deletes every alias in ascending name order. Individual
// delete failures are deliberately ignored.
func runUninstall(ctx context.Context, client *gh.Client, aliases map[string]string) {
	for _, name := range config.SortedNames(aliases) {
		client.DeleteAlias(ctx, name)
	}
}
