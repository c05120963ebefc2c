// Package fileops provides convenience helpers for reading, appending,
// and sampling plain-text files.
package fileops

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/textkit/fileops-mcp/internal/filterspec"
)

var (
	// ErrInvalidInput reports a missing file or directory, or input
	// that cannot be interpreted, such as a malformed integer token.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoData reports an operation with no valid result, such as
	// picking a random line from an empty file.
	ErrNoData = errors.New("no data")
)

// LoadParams controls how LoadLines splits and filters file content.
// The zero value splits on newlines and drops empty lines.
type LoadParams struct {
	// Filters holds the skip filters applied to each line.
	Filters filterspec.Spec

	// Separator is the token lines are split on. Defaults to "\n".
	Separator string

	// KeepEmpty retains empty lines instead of dropping them.
	KeepEmpty bool
}

// LoadLines reads a file and returns its lines in file order, split on
// the separator and filtered per params. A separator at the end of the
// file terminates the last line rather than starting an empty one.
func LoadLines(path string, params LoadParams) ([]string, error) {
	separator := params.Separator
	if separator == "" {
		separator = "\n"
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: file not found: %s", ErrInvalidInput, path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s", path)
		}
		return nil, fmt.Errorf("failed to read file: %s - %w", path, err)
	}

	candidates := strings.Split(string(content), separator)
	if n := len(candidates); n > 0 && candidates[n-1] == "" {
		candidates = candidates[:n-1]
	}

	lines := make([]string, 0, len(candidates))
	for _, line := range candidates {
		if line == "" && !params.KeepEmpty {
			continue
		}
		if !params.Filters.KeepLine(line) {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// LoadInts reads a file of whitespace or newline separated base-10
// integers. A token that does not parse fails the whole call.
func LoadInts(path string) ([]int, error) {
	lines, err := LoadLines(path, LoadParams{})
	if err != nil {
		return nil, err
	}

	var values []int
	for _, line := range lines {
		for _, token := range strings.Fields(line) {
			value, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("%w: invalid integer %q in %s", ErrInvalidInput, token, path)
			}
			values = append(values, value)
		}
	}

	return values, nil
}

// AppendToFile appends text verbatim to the file at path, adding no
// separators. With createMissing false, a missing file is an error.
func AppendToFile(path, text string, createMissing bool) error {
	flags := os.O_WRONLY | os.O_APPEND
	if createMissing {
		flags |= os.O_CREATE
	} else if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: file not found: %s", ErrInvalidInput, path)
		}
		return fmt.Errorf("failed to stat file: %s - %w", path, err)
	}

	file, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: file not found: %s", ErrInvalidInput, path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("permission denied: %s", path)
		}
		return fmt.Errorf("failed to open file: %s - %w", path, err)
	}

	if _, err := file.WriteString(text); err != nil {
		file.Close()
		return fmt.Errorf("failed to append to file: %s - %w", path, err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close file: %s - %w", path, err)
	}

	return nil
}

// RandomLine picks one line uniformly at random from the file at path
// using single-pass reservoir sampling, so the file is never held in
// memory as a whole.
func RandomLine(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: file not found: %s", ErrInvalidInput, path)
		}
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("permission denied: %s", path)
		}
		return "", fmt.Errorf("failed to open file: %s - %w", path, err)
	}
	defer file.Close()

	// Line i (1-based) replaces the reservoir with probability 1/i,
	// which leaves every line selected with probability 1/N.
	var chosen string
	seen := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		seen++
		if rand.IntN(seen) == 0 {
			chosen = scanner.Text()
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read file: %s - %w", path, err)
	}

	if seen == 0 {
		return "", fmt.Errorf("%w: file has no lines: %s", ErrNoData, path)
	}

	return chosen, nil
}

// ListFiles returns the base names of the regular files directly inside
// dir that survive the spec's directory filters. Subdirectories are
// excluded and never descended into.
func ListFiles(dir string, spec filterspec.Spec) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory not found: %s", ErrInvalidInput, dir)
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("permission denied: %s", dir)
		}
		return nil, fmt.Errorf("failed to list directory: %s - %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if !spec.KeepFile(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}

	return files, nil
}
