// Package filterspec defines the filter specification applied to text
// lines and directory entries.
package filterspec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Well-known filter keys. Line loaders consult the skip keys, directory
// listing consults the file keys.
const (
	SkipPrefix        = "skip if starts with"
	SkipContains      = "skip if contains"
	TargetExtensions  = "targetFileExtensions"
	ExcludeExtensions = "excludeFileExtensions"
	ExcludeFiles      = "excludeFiles"
)

// Spec maps a filter key to the patterns it applies. Values may be
// supplied either as individual entries or as comma-separated strings;
// Values expands both shapes.
type Spec map[string][]string

// Parse normalizes the comma-separated map encoding into a Spec.
func Parse(raw map[string]string) Spec {
	spec := make(Spec, len(raw))
	for key, value := range raw {
		patterns := splitList(value)
		if len(patterns) == 0 {
			continue
		}
		spec[key] = patterns
	}
	return spec
}

// Load reads a filter specification from a YAML file. Each key maps to
// either a list of strings or a single comma-separated string.
func Load(path string) (Spec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter spec %s: %w", path, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse filter spec %s: %w", path, err)
	}

	spec := make(Spec, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			if patterns := splitList(v); len(patterns) > 0 {
				spec[key] = patterns
			}
		case []any:
			var patterns []string
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("filter spec %s: key %q contains a non-string entry", path, key)
				}
				patterns = append(patterns, splitList(s)...)
			}
			if len(patterns) > 0 {
				spec[key] = patterns
			}
		default:
			return nil, fmt.Errorf("filter spec %s: key %q must be a string or list of strings", path, key)
		}
	}

	return spec, nil
}

// Values returns the patterns for a key, expanding any comma-separated
// entries.
func (s Spec) Values(key string) []string {
	var patterns []string
	for _, value := range s[key] {
		patterns = append(patterns, splitList(value)...)
	}
	return patterns
}

// KeepLine reports whether a line survives the skip filters.
func (s Spec) KeepLine(line string) bool {
	for _, prefix := range s.Values(SkipPrefix) {
		if strings.HasPrefix(line, prefix) {
			return false
		}
	}
	for _, substring := range s.Values(SkipContains) {
		if strings.Contains(line, substring) {
			return false
		}
	}
	return true
}

// KeepFile reports whether a file base name survives the directory
// filters. Extensions match exactly, including the leading dot.
func (s Spec) KeepFile(name string) bool {
	for _, excluded := range s.Values(ExcludeFiles) {
		if name == excluded {
			return false
		}
	}

	ext := filepath.Ext(name)

	if targets := s.Values(TargetExtensions); len(targets) > 0 {
		matched := false
		for _, target := range targets {
			if ext == target {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for _, excluded := range s.Values(ExcludeExtensions) {
		if ext == excluded {
			return false
		}
	}

	return true
}

// Merge returns a new Spec combining the receiver's patterns with the
// other's. Neither input is modified.
func (s Spec) Merge(other Spec) Spec {
	if len(other) == 0 {
		return s
	}
	if len(s) == 0 {
		return other
	}
	merged := make(Spec, len(s)+len(other))
	for key, patterns := range s {
		merged[key] = append([]string(nil), patterns...)
	}
	for key, patterns := range other {
		merged[key] = append(merged[key], patterns...)
	}
	return merged
}

func splitList(value string) []string {
	var patterns []string
	for part := range strings.SplitSeq(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			patterns = append(patterns, part)
		}
	}
	return patterns
}
