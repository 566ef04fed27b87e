package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows the explicit list of test binaries given on the command line
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the binaries whose base name matches pattern, in order.
// Supports filepath.Match globs like "parser_*", loose wildcard patterns like
// "*net*http*" and, without wildcards, a plain substring.
func (f *Filter) FilterByName(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	var filtered []string
	for _, path := range paths {
		if matchName(filepath.Base(path), pattern) {
			filtered = append(filtered, path)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Loose match: the non-empty parts between '*' must appear in order
	if strings.Contains(pattern, "?") {
		return false
	}
	rest := name
	matchedAny := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		matchedAny = true
	}
	return matchedAny
}

// Unique drops repeated paths, keeping the first occurrence
func (f *Filter) Unique(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	unique := make([]string, 0, len(paths))
	for _, path := range paths {
		key := filepath.Clean(path)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, path)
	}
	return unique
}
