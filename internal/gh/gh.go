// Package gh invokes the GitHub CLI's alias subcommands.
package gh

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/dotwrap/internal/cmd"
)

// Executable is the external tool every command shells out to.
const Executable = "gh"

// ErrNotFound indicates the gh CLI is not installed or not in PATH.
var ErrNotFound = fmt.Errorf("missing required tool: %s (GitHub CLI) not found on PATH", Executable)

// Runner executes the gh binary with an argument vector and reports the
// captured output. Implementations spawn one child process per call and
// wait for it to exit.
type Runner interface {
	Run(ctx context.Context, args ...string) (cmd.Result, error)
}

// execRunner is the Runner used outside of tests.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, args ...string) (cmd.Result, error) {
	return cmd.RunContext(ctx, Executable, args...)
}

// Client wraps the alias subcommands of the gh CLI.
type Client struct {
	runner   Runner
	lookPath func(file string) (string, error)
}

// NewClient returns a Client that spawns real gh processes.
func NewClient() *Client {
	return &Client{runner: execRunner{}, lookPath: exec.LookPath}
}

// NewClientWithRunner returns a Client backed by the given runner.
// Check always succeeds on such a client; tests exercise the alias
// subcommands without gh installed.
func NewClientWithRunner(r Runner) *Client {
	return &Client{
		runner:   r,
		lookPath: func(string) (string, error) { return Executable, nil },
	}
}

// Check verifies that the gh executable is resolvable on the search path.
func (c *Client) Check() error {
	if _, err := c.lookPath(Executable); err != nil {
		return ErrNotFound
	}
	return nil
}

// SetAlias installs one alias, replacing any existing definition.
// A non-zero exit is a failure carrying gh's stderr.
func (c *Client) SetAlias(ctx context.Context, name, command string) error {
	res, err := c.runner.Run(ctx, "alias", "set", "--clobber", name, command)
	if err != nil {
		return err
	}
	return checkExit(res)
}

// DeleteAlias removes one alias. The result is deliberately discarded:
// deleting an alias that was never installed is not a failure.
func (c *Client) DeleteAlias(ctx context.Context, name string) {
	_, _ = c.runner.Run(ctx, "alias", "delete", name)
}

// ListAliases returns gh's listing of every installed alias.
// A non-zero exit is a failure carrying gh's stderr.
func (c *Client) ListAliases(ctx context.Context) (string, error) {
	res, err := c.runner.Run(ctx, "alias", "list")
	if err != nil {
		return "", err
	}
	if err := checkExit(res); err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// checkExit turns a non-zero exit status into an error, preferring the
// captured stderr as the message.
func checkExit(res cmd.Result) error {
	if res.ExitCode == 0 {
		return nil
	}
	if msg := strings.TrimSpace(res.Stderr); msg != "" {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("%s exited with status %d", Executable, res.ExitCode)
}
