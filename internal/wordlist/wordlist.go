// Package wordlist provides the name and commit message lists.
//
// Lists come either from the copies bundled into the binary or from
// external files. Text files hold one entry per line; files ending in
// .yaml or .yml hold a YAML sequence of strings. Blank entries are dropped
// in both cases.
package wordlist

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	//go:embed names.txt
	bundledNames string

	//go:embed commit_messages.txt
	bundledTemplates string
)

// DefaultNames returns the bundled name list.
func DefaultNames() []string {
	return Parse(bundledNames)
}

// DefaultTemplates returns the bundled commit message templates.
func DefaultTemplates() []string {
	return Parse(bundledTemplates)
}

// Parse splits line-delimited text, dropping blank lines.
func Parse(text string) []string {
	var out []string
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// ParseYAML decodes a YAML sequence of strings, dropping blank entries.
func ParseYAML(data []byte) ([]string, error) {
	var raw []string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out := raw[:0]
	for _, s := range raw {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Load reads the list at path. Errors are returned as *LoadError.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	var entries []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		entries, err = ParseYAML(data)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
	default:
		entries = Parse(string(data))
	}

	if len(entries) == 0 {
		return nil, &LoadError{Path: path, Err: ErrEmptySource}
	}
	return entries, nil
}

// LoadOr loads path, or returns fallback when path is empty.
func LoadOr(path string, fallback func() []string) ([]string, error) {
	if path == "" {
		return fallback(), nil
	}
	return Load(path)
}
