// Package log provides context-aware, tag-prefixed diagnostics for dotwrap.
// Every line it emits carries the tool's name tag so users can tell dotwrap
// output apart from gh's own.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Tag prefixes every user-facing line dotwrap prints.
const Tag = "dotwrap"

type ctxKey struct{}

// errorTag colors the tag on error lines. color disables itself when the
// stream is not a terminal, so piped output stays plain.
var errorTag = color.New(color.FgRed).SprintFunc()

// Logger writes diagnostics and verbose command logging.
type Logger struct {
	out     io.Writer
	verbose bool
}

// New creates a new logger.
func New(out io.Writer, verbose bool) *Logger {
	return &Logger{out: out, verbose: verbose}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Errorf writes a tagged error line.
func (l *Logger) Errorf(format string, args ...any) {
	fmt.Fprintf(l.out, "%s %s\n", errorTag(Tag+":"), fmt.Sprintf(format, args...))
}

// Command logs an external command execution.
// Only prints when verbose mode is enabled.
func (l *Logger) Command(name string, args ...string) {
	if l.verbose {
		fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
	}
}

// Verbose returns true if verbose mode is enabled.
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
