// Package controller provides output adapters for displaying qacheck results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"qacheck.dev/pkg/qacheck/internal/adapter"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

// UI defines how workflow progress and results reach the user.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplayRunInfo(ctx context.Context, tool string, root m.Path)
	DisplayProgress(ctx context.Context, message string)
	DisplayCoverageReport(ctx context.Context, result m.AnalysisResult, limit int) error
	DisplayStructuredReport(ctx context.Context, format adapter.ReportFormat, result m.AnalysisResult) error
	DisplayScaffoldCreated(ctx context.Context, destination m.Path)
	DisplayWarning(ctx context.Context, message string)
	DisplayError(ctx context.Context, err error)
}

// NewUI returns a styled UI for terminals and a plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
