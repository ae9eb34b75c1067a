// Package adapter contains infrastructure adapters for the qacheck CLI.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	m "qacheck.dev/pkg/qacheck/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning user projects. It hides direct `os` access so the
// analyzer and generator can be tested without touching the disk.
type SourceFSAdapter interface {
	// Walk traverses root recursively in lexical order. Returning
	// filepath.SkipDir from fn on a directory prunes it.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)

	// CreateFile writes content to a new file. It fails with an error
	// matching os.ErrExist when the path is already taken.
	CreateFile(path m.Path, content []byte, perm os.FileMode) error

	// AbsPath returns the cleaned absolute form of path.
	AbsPath(path m.Path) (m.Path, error)

	// ResolvePath returns path with every symlink in it evaluated.
	ResolvePath(path m.Path) (m.Path, error)

	// RelPath returns the relative path from base to target.
	RelPath(base, target m.Path) (m.Path, error)

	// JoinPath joins path elements into a single path.
	JoinPath(elem ...string) m.Path
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter backs SourceFSAdapter with the host filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Walk iterates over every entry under root, descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// CreateFile creates path exclusively and writes content to it.
func (a *LocalSourceFSAdapter) CreateFile(path m.Path, content []byte, perm os.FileMode) error {
	// #nosec G304 - path is the scaffold destination chosen by the user
	f, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	_, writeErr := f.Write(content)
	closeErr := f.Close()

	if err := errors.Join(writeErr, closeErr); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

// AbsPath returns the cleaned absolute path.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// ResolvePath follows symlinks in path.
func (a *LocalSourceFSAdapter) ResolvePath(path m.Path) (m.Path, error) {
	resolved, err := filepath.EvalSymlinks(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(resolved), nil
}

// RelPath returns the relative path from base to target.
func (a *LocalSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	rel, err := filepath.Rel(string(base), string(target))
	if err != nil {
		return "", err
	}

	return m.Path(rel), nil
}

// JoinPath joins path elements into a single path.
func (a *LocalSourceFSAdapter) JoinPath(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}
