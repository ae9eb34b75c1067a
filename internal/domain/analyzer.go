package domain

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"qacheck.dev/pkg/qacheck/internal/adapter"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

// Analyzer scans a tree and pairs source files with their tests by name.
type Analyzer interface {
	Analyze(ctx context.Context, root m.Path) (m.AnalysisResult, error)
}

type analyzer struct {
	fsAdapter  adapter.SourceFSAdapter
	classifier *Classifier
}

// NewAnalyzer constructs an Analyzer backed by the provided filesystem
// adapter and classifier.
func NewAnalyzer(fsAdapter adapter.SourceFSAdapter, classifier *Classifier) Analyzer {
	return &analyzer{
		fsAdapter:  fsAdapter,
		classifier: classifier,
	}
}

// Analyze walks root and returns which source files have a matching test.
//
// Test names are pooled across the whole tree: a test in one directory
// satisfies a source with the same stem in any other directory. Any error
// during the walk aborts the scan and no partial result is returned.
func (a *analyzer) Analyze(ctx context.Context, root m.Path) (m.AnalysisResult, error) {
	scanRoot, err := a.fsAdapter.AbsPath(root)
	if err != nil {
		return m.AnalysisResult{}, fmt.Errorf("%w: resolve %s: %w", ErrScanFailure, root, err)
	}

	sources, testNames, err := a.collect(ctx, scanRoot)
	if err != nil {
		slog.Error("coverage scan aborted", "root", scanRoot, "error", err)
		return m.AnalysisResult{}, fmt.Errorf("%w: %w", ErrScanFailure, err)
	}

	var tested, untested []m.Path

	for _, source := range sources {
		if _, ok := testNames[ExpectedTestName(source.Name)]; ok {
			tested = append(tested, source.Path)
			continue
		}

		untested = append(untested, source.Path)
	}

	result := m.NewAnalysisResult(tested, untested)

	slog.Info("coverage scan finished",
		"root", scanRoot,
		"total", result.Summary.TotalSourceFiles,
		"tested", result.Summary.TestedFiles,
		"untested", result.Summary.UntestedFiles,
	)

	return result, nil
}

func (a *analyzer) collect(ctx context.Context, scanRoot m.Path) ([]m.FileRecord, map[string]struct{}, error) {
	var sources []m.FileRecord

	testNames := make(map[string]struct{})

	err := a.fsAdapter.Walk(scanRoot, func(path string, info os.FileInfo, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := a.fsAdapter.RelPath(scanRoot, m.Path(path))
		if err != nil {
			return err
		}

		if walkErr != nil {
			// Excluded directories are never listed, so failing to list one is not an error.
			if info != nil && info.IsDir() && rel != "." && a.classifier.IsExcluded(rel) {
				slog.Debug("skipping unreadable excluded directory", "path", rel, "error", walkErr)
				return filepath.SkipDir
			}

			return walkErr
		}

		if rel == "." {
			return nil
		}

		if a.classifier.IsExcluded(rel) {
			if info.IsDir() {
				slog.Debug("skipping excluded directory", "path", rel)
				return filepath.SkipDir
			}

			return nil
		}

		if info.IsDir() || !a.isFile(m.Path(path), info) {
			return nil
		}

		record := a.classifier.Record(rel)

		switch record.Kind {
		case m.KindTest:
			testNames[record.Name] = struct{}{}
		case m.KindSource:
			sources = append(sources, record)
		case m.KindIgnored:
		}

		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return sources, testNames, nil
}

// isFile accepts regular files and symlinks that resolve to regular files.
// Broken links are ignored rather than failing the scan.
func (a *analyzer) isFile(path m.Path, info os.FileInfo) bool {
	if info.Mode().IsRegular() {
		return true
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return false
	}

	target, err := a.fsAdapter.FileInfo(path)
	if err != nil {
		return false
	}

	return target.Mode().IsRegular()
}
