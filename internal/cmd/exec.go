package cmd

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"github.com/raphi011/dotwrap/internal/log"
)

// Result holds the outcome of a finished external command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunContext executes a command and waits for it to finish, capturing both
// output streams as text. A non-zero exit status is not an error; it is
// reported through Result.ExitCode. The returned error is non-nil only when
// the command could not be started or the context ended first.
func RunContext(ctx context.Context, name string, args ...string) (Result, error) {
	log.FromContext(ctx).Command(name, args...)

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(ctx, name, args...)
	c.Stdout = &stdout
	c.Stderr = &stderr

	err := c.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return res, nil
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	default:
		if ctxErr := ctx.Err(); ctxErr != nil {
			return res, ctxErr
		}
		return res, err
	}
}
