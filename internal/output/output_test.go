package output

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestLine_Tagged(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	p := New(&buf)
	if err := p.Line("dw_demo: pr list"); err != nil {
		t.Fatalf("Line = %v, want nil", err)
	}
	if got, want := buf.String(), "dotwrap: dw_demo: pr list\n"; got != want {
		t.Errorf("Line output = %q, want %q", got, want)
	}
}

var errClosed = errors.New("write: broken pipe")

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errClosed
}

func TestLine_PropagatesWriteError(t *testing.T) {
	t.Parallel()
	p := New(failWriter{})
	if err := p.Line("dw_x: y"); err == nil {
		t.Error("Line on failing writer = nil, want error")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	t.Parallel()
	if p := FromContext(context.Background()); p == nil {
		t.Fatal("FromContext returned nil")
	}
}

func TestFromContext_RoundTrip(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	ctx := WithPrinter(context.Background(), &buf)
	p := FromContext(ctx)
	if p.Writer() != &buf {
		t.Error("FromContext did not return the attached printer")
	}
}
