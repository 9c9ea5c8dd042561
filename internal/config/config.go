// Package config loads and validates the aliases.toml alias definitions.
//
// The file lives next to the installed dotwrap binary and has the shape
//
//	[providers.gh.aliases]
//	dw_name = "pr list"
//
// Alias commands may use TOML multiline strings; embedded newlines and
// indentation are collapsed to single spaces before the alias is installed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// FileName is the alias definition file, expected next to the binary.
	FileName = "aliases.toml"

	// AliasPrefix is required on every alias name dotwrap manages.
	AliasPrefix = "dw_"

	// DefaultProvider is assumed when no provider argument is given.
	DefaultProvider = "gh"
)

// executablePath is swapped out in tests.
var executablePath = os.Executable

// Path returns the expected location of aliases.toml: the directory
// containing the running binary, with symlinks resolved.
func Path() (string, error) {
	exe, err := executablePath()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// Load reads and parses the alias definition file at path.
// The document is returned loosely typed; Aliases performs the shape
// validation so that violations get dotwrap's messages, not the decoder's.
func Load(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("missing %s next to the dotwrap binary", FileName)
		}
		return nil, fmt.Errorf("read %s: %w", FileName, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return doc, nil
}

// Aliases extracts and validates the alias table for a provider, returning
// a mapping from alias name to whitespace-collapsed command. Validation is
// all-or-nothing: the first violation rejects the whole document.
func Aliases(doc map[string]any, provider string) (map[string]string, error) {
	providers, ok := doc["providers"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s must define [providers.<name>.aliases]", FileName)
	}

	providerTable, ok := providers[provider].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unknown provider in %s: %s", FileName, provider)
	}

	aliases, ok := providerTable["aliases"].(map[string]any)
	if !ok || len(aliases) == 0 {
		return nil, fmt.Errorf("missing or empty [providers.%s.aliases]", provider)
	}

	out := make(map[string]string, len(aliases))
	for name, value := range aliases {
		if name == "" {
			return nil, errors.New("alias keys must be non-empty strings")
		}
		if !strings.HasPrefix(name, AliasPrefix) {
			return nil, fmt.Errorf("invalid alias key (must start with %s): %s", AliasPrefix, name)
		}
		command, ok := value.(string)
		if !ok || strings.TrimSpace(command) == "" {
			return nil, fmt.Errorf("alias command must be a non-empty string: %s", name)
		}
		out[name] = CollapseWhitespace(command)
	}
	return out, nil
}

// CollapseWhitespace replaces every maximal run of whitespace (including
// newlines) with a single space and trims the result.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SortedNames returns the alias names in ascending lexicographic order,
// which keeps install and uninstall processing deterministic.
func SortedNames(aliases map[string]string) []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
