package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"qacheck.dev/pkg/qacheck/internal/adapter"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

const ruleWidth = 50

// paint decorates a piece of report text.
type paint func(string) string

func plain(s string) string { return s }

// palette groups the decorations applied to report elements.
type palette struct {
	title   paint
	success paint
	warning paint
	failure paint
	muted   paint
}

var plainPalette = palette{
	title:   plain,
	success: plain,
	warning: plain,
	failure: plain,
	muted:   plain,
}

// SimpleUI implements UI using cobra Command's output streams.
type SimpleUI struct {
	cmd     *cobra.Command
	palette palette
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, palette: plainPalette}
}

// DisplayRunInfo announces the tool and, when known, the root it works on.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, tool string, root m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.palette.title(fmt.Sprintf("🚀 Running %s...", tool)))

	if root != "" {
		s.printf("📁 Root: %s\n", root)
	}
}

// DisplayProgress prints a verbose progress line.
func (s *SimpleUI) DisplayProgress(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.palette.muted(message))
}

// DisplayCoverageReport prints the summary table and the first limit untested files.
func (s *SimpleUI) DisplayCoverageReport(ctx context.Context, result m.AnalysisResult, limit int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rule := s.palette.muted(strings.Repeat("=", ruleWidth))

	s.printf("\n%s\n", rule)
	s.printf("%s\n", s.palette.title("📊 TEST COVERAGE ANALYSIS REPORT"))
	s.printf("%s\n", rule)
	s.printf("%s", s.renderSummaryTable(result.Summary))
	s.printf("%s\n", rule)

	if len(result.UntestedFiles) > 0 && limit > 0 {
		shown := result.UntestedFiles
		if len(shown) > limit {
			shown = shown[:limit]
		}

		s.printf("\n%s\n", s.palette.warning(fmt.Sprintf("Critical Untested Files (first %d):", limit)))

		for _, path := range shown {
			s.printf("  - %s\n", path)
		}
	}

	s.printf("%s\n\n", rule)

	return nil
}

func (s *SimpleUI) renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetAutoWrapText(false)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	table.Append([]string{"Total Source Files:", fmt.Sprintf("%d", summary.TotalSourceFiles)})
	table.Append([]string{"Tested Files:", fmt.Sprintf("%d", summary.TestedFiles)})
	table.Append([]string{"Untested Files:", fmt.Sprintf("%d", summary.UntestedFiles)})
	table.Append([]string{"Coverage:", s.coverageText(summary.CoveragePercentage)})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) coverageText(percentage float64) string {
	text := fmt.Sprintf("%.2f%%", percentage)

	switch {
	case percentage >= 80:
		return s.palette.success(text)
	case percentage >= 50:
		return s.palette.warning(text)
	default:
		return s.palette.failure(text)
	}
}

// DisplayStructuredReport prints the full result in a machine-readable format.
func (s *SimpleUI) DisplayStructuredReport(ctx context.Context, format adapter.ReportFormat, result m.AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return adapter.EncodeReport(s.cmd.OutOrStdout(), format, result)
}

// DisplayScaffoldCreated confirms a generated test file.
func (s *SimpleUI) DisplayScaffoldCreated(ctx context.Context, destination m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.palette.success(fmt.Sprintf("✅ Created test: %s", destination)))
}

// DisplayWarning prints a non-fatal condition.
func (s *SimpleUI) DisplayWarning(ctx context.Context, message string) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", s.palette.warning(fmt.Sprintf("⚠️  %s", message)))
}

// DisplayError prints an error message.
func (s *SimpleUI) DisplayError(ctx context.Context, err error) {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return
	}

	s.printf("%s\n", s.palette.failure(fmt.Sprintf("❌ Error: %v", err)))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
