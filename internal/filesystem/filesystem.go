// Package filesystem provides file operations rooted at a served
// directory.
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/textkit/fileops-mcp/internal/fileops"
	"github.com/textkit/fileops-mcp/internal/filterspec"
)

// Service exposes the fileops helpers for paths inside a root
// directory. Default filters supplied at construction are merged with
// the filters of each call.
type Service struct {
	rootPath string
	filters  filterspec.Spec
}

// New creates a Service rooted at rootPath.
func New(rootPath string, filters filterspec.Spec) *Service {
	absPath, _ := filepath.Abs(rootPath)
	if filters == nil {
		filters = filterspec.Spec{}
	}
	return &Service{
		rootPath: absPath,
		filters:  filters,
	}
}

// ResolvePath resolves a relative path within the root and validates it.
func (s *Service) ResolvePath(relativePath string) (string, error) {
	relativePath = strings.TrimSpace(relativePath)
	relativePath = strings.TrimPrefix(relativePath, "/")

	fullPath := filepath.Join(s.rootPath, relativePath)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		return "", err
	}

	// Security check: ensure path is within the root
	relPath, err := filepath.Rel(s.rootPath, absPath)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("%w: path traversal not allowed: %s", fileops.ErrInvalidInput, relativePath)
	}

	return absPath, nil
}

// LoadLines reads the lines of a file inside the root.
func (s *Service) LoadLines(path string, params fileops.LoadParams) ([]string, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	params.Filters = s.filters.Merge(params.Filters)
	return fileops.LoadLines(fullPath, params)
}

// LoadInts reads the integers of a file inside the root.
func (s *Service) LoadInts(path string) ([]int, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	return fileops.LoadInts(fullPath)
}

// Append appends text to a file inside the root.
func (s *Service) Append(path, text string, createMissing bool) error {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return err
	}
	return fileops.AppendToFile(fullPath, text, createMissing)
}

// RandomLine picks a uniformly random line from a file inside the root.
func (s *Service) RandomLine(path string) (string, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return "", err
	}
	return fileops.RandomLine(fullPath)
}

// ListFiles lists the regular files directly inside a directory of the
// root. An empty path or "." lists the root itself.
func (s *Service) ListFiles(path string, spec filterspec.Spec) ([]string, error) {
	if path == "." {
		path = ""
	}
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return nil, err
	}
	return fileops.ListFiles(fullPath, s.filters.Merge(spec))
}

// Exists checks if a path exists inside the root.
func (s *Service) Exists(path string) bool {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return false
	}
	_, err = os.Stat(fullPath)
	return err == nil
}

// IsDirectory checks if a path inside the root is a directory.
func (s *Service) IsDirectory(path string) (bool, error) {
	fullPath, err := s.ResolvePath(path)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		return false, nil
	}

	return info.IsDir(), nil
}

// RootPath returns the root path.
func (s *Service) RootPath() string {
	return s.rootPath
}
