package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"syscall"

	"qacheck.dev/pkg/qacheck/internal/adapter"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

const scaffoldFileMode = 0o644

// Generator scaffolds a test file next to a single source file.
type Generator interface {
	// Plan validates target and computes where and how its test would be
	// written. Precondition failures wrap ErrTargetNotFound,
	// ErrInvalidTarget or ErrDestinationExists.
	Plan(ctx context.Context, target m.Path) (m.Scaffold, error)
	// Write renders the planned template and creates the destination,
	// never replacing an existing file.
	Write(ctx context.Context, scaffold m.Scaffold) error
}

type generator struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewGenerator constructs a Generator backed by the provided filesystem adapter.
func NewGenerator(fsAdapter adapter.SourceFSAdapter) Generator {
	return &generator{fsAdapter: fsAdapter}
}

func (g *generator) Plan(ctx context.Context, target m.Path) (m.Scaffold, error) {
	if err := ctx.Err(); err != nil {
		return m.Scaffold{}, err
	}

	source, err := g.fsAdapter.AbsPath(target)
	if err != nil {
		return m.Scaffold{}, fmt.Errorf("resolve %s: %w", target, err)
	}

	// A linked target is scaffolded next to, and templated by, the file it points to.
	if resolved, err := g.fsAdapter.ResolvePath(source); err == nil {
		source = resolved
	} else if !isNotExist(err) {
		return m.Scaffold{}, fmt.Errorf("resolve %s: %w", source, err)
	}

	info, err := g.fsAdapter.FileInfo(source)
	if err != nil {
		if isNotExist(err) {
			return m.Scaffold{}, fmt.Errorf("%w %s", ErrTargetNotFound, source)
		}

		return m.Scaffold{}, fmt.Errorf("stat %s: %w", source, err)
	}

	if info.IsDir() {
		return m.Scaffold{}, fmt.Errorf("%w: %s", ErrInvalidTarget, source)
	}

	name := filepath.Base(string(source))
	identifier, _ := SplitName(name)
	destination := g.fsAdapter.JoinPath(filepath.Dir(string(source)), ExpectedTestName(name))

	if _, err := g.fsAdapter.FileInfo(destination); err == nil {
		return m.Scaffold{}, fmt.Errorf("%w: %s", ErrDestinationExists, destination)
	} else if !isNotExist(err) {
		return m.Scaffold{}, fmt.Errorf("stat %s: %w", destination, err)
	}

	scaffold := m.Scaffold{
		Source:      source,
		Destination: destination,
		Identifier:  identifier,
		Template:    SelectTemplate(source, identifier),
	}

	slog.Debug("planned scaffold",
		"source", scaffold.Source,
		"destination", scaffold.Destination,
		"template", scaffold.Template,
	)

	return scaffold, nil
}

func (g *generator) Write(ctx context.Context, scaffold m.Scaffold) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content, err := RenderTemplate(scaffold.Template, scaffold.Identifier)
	if err != nil {
		return err
	}

	if err := g.fsAdapter.CreateFile(scaffold.Destination, content, scaffoldFileMode); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrDestinationExists, scaffold.Destination)
		}

		return fmt.Errorf("create %s: %w", scaffold.Destination, err)
	}

	slog.Info("scaffold written", "destination", scaffold.Destination, "template", scaffold.Template)

	return nil
}

// isNotExist also treats ENOTDIR as missing, so "file.js/x" is not found
// rather than an unexpected error.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
