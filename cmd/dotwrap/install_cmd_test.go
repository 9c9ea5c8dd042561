package main

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/raphi011/dotwrap/internal/cmd"
	"github.com/raphi011/dotwrap/internal/config"
	"github.com/raphi011/dotwrap/internal/gh"
)

// fakeRunner records every gh argument vector and replays canned results
// keyed by alias name.
type fakeRunner struct {
	calls  [][]string
	failOn map[string]cmd.Result
}

func (f *fakeRunner) Run(_ context.Context, args ...string) (cmd.Result, error) {
	f.calls = append(f.calls, args)
	for _, arg := range args {
		if res, ok := f.failOn[arg]; ok {
			return res, nil
		}
	}
	return cmd.Result{}, nil
}

func TestRunInstall_SortedOrderAndNormalization(t *testing.T) {
	t.Parallel()
	doc := map[string]any{
		"providers": map[string]any{
			"gh": map[string]any{
				"aliases": map[string]any{
					"dw_b": "pr view --web",
					"dw_a": "cmd subcmd   --flag\n  --two   value",
				},
			},
		},
	}
	aliases, err := config.Aliases(doc, "gh")
	if err != nil {
		t.Fatalf("Aliases = %v, want nil", err)
	}

	f := &fakeRunner{}
	if err := runInstall(context.Background(), gh.NewClientWithRunner(f), aliases); err != nil {
		t.Fatalf("runInstall = %v, want nil", err)
	}

	want := [][]string{
		{"alias", "set", "--clobber", "dw_a", "cmd subcmd --flag --two value"},
		{"alias", "set", "--clobber", "dw_b", "pr view --web"},
	}
	if !reflect.DeepEqual(f.calls, want) {
		t.Errorf("calls = %v, want %v", f.calls, want)
	}
}

func TestRunInstall_StopsOnFirstFailure(t *testing.T) {
	t.Parallel()
	aliases := map[string]string{
		"dw_a": "pr list",
		"dw_b": "pr view",
		"dw_c": "pr status",
	}
	f := &fakeRunner{failOn: map[string]cmd.Result{
		"dw_b": {Stderr: "disk full\n", ExitCode: 1},
	}}

	err := runInstall(context.Background(), gh.NewClientWithRunner(f), aliases)
	if err == nil {
		t.Fatal("runInstall = nil, want error")
	}
	if !strings.Contains(err.Error(), "gh alias set failed for dw_b") {
		t.Errorf("runInstall error = %q, want it to name dw_b", err)
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("runInstall error = %q, want it to carry stderr", err)
	}
	// dw_c is never attempted.
	if len(f.calls) != 2 {
		t.Errorf("got %d gh invocations, want 2: %v", len(f.calls), f.calls)
	}
}

func TestInstall_ValidationPrecedesAction(t *testing.T) {
	t.Parallel()
	doc := map[string]any{
		"providers": map[string]any{
			"gh": map[string]any{
				"aliases": map[string]any{
					"dw_good": "pr list",
					"rogue":   "rm -rf /",
				},
			},
		},
	}

	_, err := config.Aliases(doc, "gh")
	if err == nil {
		t.Fatal("Aliases = nil, want error for unprefixed key")
	}
	// The handler never reaches runInstall when validation fails, so a
	// bad table can never cause a gh invocation.
	if !strings.Contains(err.Error(), "rogue") {
		t.Errorf("Aliases error = %q, want it to name the offending key", err)
	}
}

func TestRunUninstall_AttemptsEveryDelete(t *testing.T) {
	t.Parallel()
	aliases := map[string]string{
		"dw_b": "pr view",
		"dw_a": "pr list",
	}
	f := &fakeRunner{failOn: map[string]cmd.Result{
		"dw_a": {Stderr: "no such alias\n", ExitCode: 1},
	}}

	runUninstall(context.Background(), gh.NewClientWithRunner(f), aliases)

	want := [][]string{
		{"alias", "delete", "dw_a"},
		{"alias", "delete", "dw_b"},
	}
	if !reflect.DeepEqual(f.calls, want) {
		t.Errorf("calls = %v, want %v", f.calls, want)
	}
}

func TestProviderFromArgs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		args      []string
		want      string
		wantUsage bool
	}{
		{"default", nil, "gh", false},
		{"explicit gh", []string{"gh"}, "gh", false},
		{"unsupported", []string{"glab"}, "", true},
		{"empty string", []string{""}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := providerFromArgs(tt.args)
			if tt.wantUsage {
				var usage *usageError
				if !errors.As(err, &usage) {
					t.Fatalf("providerFromArgs(%v) error = %v, want usageError", tt.args, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("providerFromArgs(%v) = %v, want nil", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("providerFromArgs(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
