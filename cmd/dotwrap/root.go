package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/dotwrap/internal/config"
	"github.com/raphi011/dotwrap/internal/log"
	"github.com/raphi011/dotwrap/internal/output"
)

// Exit codes form the CLI contract.
const (
	exitOK      = 0 // success
	exitEnv     = 1 // environment, configuration, or external-tool failure
	exitInvalid = 2 // invalid invocation or unsupported provider
)

// Global flags
var verbose bool

// usageError marks failures that must terminate with exitInvalid.
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dotwrap",
	Short: "Manage dw_-prefixed aliases in the GitHub CLI",
	Long: `dotwrap is a thin overlay over the GitHub CLI's alias engine.

It reads alias definitions from an aliases.toml placed next to the dotwrap
binary and asks gh to install, remove, or list them. Alias storage belongs
entirely to gh; dotwrap never persists anything itself.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Flags are parsed by now; attach the logger and printer here so
		// --verbose is respected.
		ctx := cmd.Context()
		ctx = log.WithLogger(ctx, log.New(os.Stderr, verbose))
		ctx = output.WithPrinter(ctx, os.Stdout)
		cmd.SetContext(ctx)
	},
	// Run is not set - shows help when no subcommand provided
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	// A closed output pipe must surface as a write error, not kill the
	// process, so it can be treated as benign below.
	signal.Ignore(syscall.SIGPIPE)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	code := exitCodeForError(err)
	if err != nil && code != exitOK {
		log.New(os.Stderr, false).Errorf("%v", err)
	}
	return code
}

// exitCodeForError maps an error from command execution onto the CLI's
// exit-code contract.
func exitCodeForError(err error) int {
	if err == nil {
		return exitOK
	}
	// Writing into a closed pipe is benign (e.g. `dotwrap doctor | head`).
	if errors.Is(err, syscall.EPIPE) {
		return exitOK
	}
	var usage *usageError
	if errors.As(err, &usage) {
		return exitInvalid
	}
	// cobra reports an unrecognized subcommand as a plain error; everything
	// routed through SetFlagErrorFunc or the Args validators is already a
	// usageError.
	if strings.HasPrefix(err.Error(), "unknown command") {
		return exitInvalid
	}
	return exitEnv
}

// providerFromArgs applies the default provider and rejects anything but
// the single supported one.
func providerFromArgs(args []string) (string, error) {
	provider := config.DefaultProvider
	if len(args) == 1 {
		provider = args[0]
	}
	if provider != config.DefaultProvider {
		return "", &usageError{fmt.Errorf("invalid provider: %s", provider)}
	}
	return provider, nil
}

// providerArg validates the optional [provider] positional argument.
func providerArg(cmd *cobra.Command, args []string) error {
	if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
		return &usageError{fmt.Errorf("invalid usage: %w", err)}
	}
	return nil
}

// loadAliases reads aliases.toml next to the binary and builds the
// provider's validated alias table.
func loadAliases(provider string) (map[string]string, error) {
	path, err := config.Path()
	if err != nil {
		return nil, err
	}
	doc, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return config.Aliases(doc, provider)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{fmt.Errorf("invalid usage: %w", err)}
	})

	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newDoctorCmd())
}
