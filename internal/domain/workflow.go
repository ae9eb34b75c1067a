package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"qacheck.dev/pkg/qacheck/internal/adapter"
	"qacheck.dev/pkg/qacheck/internal/controller"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

const (
	coverageToolName = "CoverageAnalyzer"
	scaffoldToolName = "TestSuiteGenerator"
)

// CoverageArgs contains the arguments for a coverage run.
type CoverageArgs struct {
	Root    m.Path
	Verbose bool
	// Limit caps the untested files listed in the human report.
	Limit int
	// Formats are printed after the human report, in order.
	Formats []adapter.ReportFormat
	// ReportPath, when set, also saves the full result to a file.
	ReportPath m.Path
}

// ScaffoldArgs contains the arguments for generating one test file.
type ScaffoldArgs struct {
	Target  m.Path
	Verbose bool
}

// Workflow defines the entry points used by the CLI commands.
type Workflow interface {
	Coverage(ctx context.Context, args CoverageArgs) error
	Scaffold(ctx context.Context, args ScaffoldArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI
	Analyzer
	Generator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	reportStore adapter.ReportStore,
	ui controller.UI,
	analyzer Analyzer,
	generator Generator,
) Workflow {
	return &workflow{
		SourceFSAdapter: fsAdapter,
		ReportStore:     reportStore,
		UI:              ui,
		Analyzer:        analyzer,
		Generator:       generator,
	}
}

// Coverage scans args.Root and reports untested source files. Any scan
// error is fatal and returned; nothing is reported for a failed scan.
func (w *workflow) Coverage(ctx context.Context, args CoverageArgs) error {
	root, err := w.AbsPath(args.Root)
	if err != nil {
		root = args.Root
	}

	w.DisplayRunInfo(ctx, coverageToolName, root)

	if args.Verbose {
		w.DisplayProgress(ctx, "📊 Scanning project structure...")
	}

	result, err := w.Analyze(ctx, root)
	if err != nil {
		w.DisplayError(ctx, err)
		return fmt.Errorf("analyze %s: %w", root, err)
	}

	if args.Verbose {
		w.DisplayProgress(ctx, fmt.Sprintf("Found %d source file(s)", result.Summary.TotalSourceFiles))
	}

	if err := w.DisplayCoverageReport(ctx, result, args.Limit); err != nil {
		slog.Error("Failed to display coverage report", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	for _, format := range args.Formats {
		if err := w.DisplayStructuredReport(ctx, format, result); err != nil {
			slog.Error("Failed to display structured report", "format", format, "error", err)
			return fmt.Errorf("display %s: %w", format, err)
		}
	}

	if args.ReportPath != "" {
		if err := w.SaveReport(args.ReportPath, result); err != nil {
			slog.Error("Failed to save report", "path", args.ReportPath, "error", err)
			return fmt.Errorf("save report: %w", err)
		}

		if args.Verbose {
			w.DisplayProgress(ctx, fmt.Sprintf("Report saved to %s", args.ReportPath))
		}
	}

	return nil
}

// Scaffold writes a test skeleton next to args.Target. A missing target, a
// directory target or an existing test are reported and return nil.
func (w *workflow) Scaffold(ctx context.Context, args ScaffoldArgs) error {
	w.DisplayRunInfo(ctx, scaffoldToolName, "")

	scaffold, err := w.Plan(ctx, args.Target)
	if err == nil {
		if args.Verbose {
			w.DisplayProgress(ctx, fmt.Sprintf("Using %s template for %s", scaffold.Template, scaffold.Identifier))
		}

		err = w.Write(ctx, scaffold)
	}

	switch {
	case err == nil:
		w.DisplayScaffoldCreated(ctx, scaffold.Destination)
		return nil
	case errors.Is(err, ErrDestinationExists):
		slog.Warn("scaffold skipped", "target", args.Target, "reason", err)
		w.DisplayWarning(ctx, capitalize(err.Error()))

		return nil
	case errors.Is(err, ErrTargetNotFound), errors.Is(err, ErrInvalidTarget):
		slog.Warn("scaffold skipped", "target", args.Target, "reason", err)
		w.DisplayError(ctx, errors.New(capitalize(err.Error())))

		return nil
	default:
		slog.Error("Failed to scaffold test", "target", args.Target, "error", err)
		w.DisplayError(ctx, err)

		return fmt.Errorf("scaffold %s: %w", args.Target, err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	first := s[0]
	if first >= 'a' && first <= 'z' {
		return string(first-'a'+'A') + s[1:]
	}

	return s
}
