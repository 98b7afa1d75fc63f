package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/viteassets/internal/domain"
)

var _ domain.FileSystem = (*LocalFS)(nil)

// LocalFS resolves manifest references against the local file system.
// Relative references are anchored at Root, or the working directory when
// Root is empty.
type LocalFS struct {
	Root string
}

// NewLocalFS creates a LocalFS rooted at root (~ is expanded)
func NewLocalFS(root string) *LocalFS {
	if root != "" {
		root = filepath.Clean(ExpandPath(root))
	}
	return &LocalFS{Root: root}
}

// Resolve maps ref to an absolute, cleaned path of an existing file system
// entry. It fails with *domain.ResolutionError otherwise.
func (f *LocalFS) Resolve(ref string) (string, error) {
	if strings.TrimSpace(ref) == "" {
		return "", domain.NewResolutionError(ref, "", nil)
	}

	resolved := ExpandPath(ref)
	if !filepath.IsAbs(resolved) {
		if f.Root != "" {
			resolved = filepath.Join(f.Root, resolved)
		}
		abs, err := filepath.Abs(resolved)
		if err != nil {
			return "", domain.NewResolutionError(ref, resolved, err)
		}
		resolved = abs
	}
	resolved = filepath.Clean(resolved)

	if _, err := os.Stat(resolved); err != nil {
		return "", domain.NewResolutionError(ref, resolved, err)
	}
	return resolved, nil
}

// ReadFile returns the content of the file at path
func (f *LocalFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WebPath turns an absolute file path below Root into a root-relative URL
// path ("/dist/app.js"). Paths outside Root are returned unchanged.
func (f *LocalFS) WebPath(path string) string {
	if f.Root == "" {
		return path
	}
	rel, err := filepath.Rel(f.Root, filepath.FromSlash(path))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return "/" + filepath.ToSlash(rel)
}

// EnsureDir ensures the parent directory of path exists
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return home
	}
	return path
}
