// dotwrap installs, removes, and inspects dw_-prefixed aliases in the
// GitHub CLI, driven by an aliases.toml next to the binary.
package main

import (
	"fmt"
	"os"
	"runtime"
)

// Version information - set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(Execute())
}

// versionString returns the version string.
func versionString() string {
	return fmt.Sprintf("dotwrap %s (%s, %s, %s)", version, commit[:min(7, len(commit))], date, runtime.Version())
}
