// Package cmd provides helpers for executing external commands with
// captured output.
//
// This package wraps [os/exec.Cmd] so that both output streams are captured
// as text and a non-zero exit status is reported as data rather than as an
// error. Callers decide whether a non-zero status is a failure: install
// treats it as one, uninstall deliberately does not.
//
// # Design Notes
//
// dotwrap shells out to the gh CLI rather than talking to GitHub itself.
// The alias store, its persistence, and its concurrency-safety are entirely
// gh's concern; this package only needs to run one child process at a time
// and wait for it.
package cmd
