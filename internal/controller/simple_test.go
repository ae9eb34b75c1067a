package controller

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"qacheck.dev/pkg/qacheck/internal/adapter"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

func newBufferedUI() (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd), &buf
}

func TestSimpleUI_DisplayCoverageReport(t *testing.T) {
	tests := []struct {
		name            string
		result          m.AnalysisResult
		limit           int
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:         "empty tree",
			result:       m.NewAnalysisResult(nil, nil),
			limit:        10,
			wantContains: []string{"TEST COVERAGE ANALYSIS REPORT", "Total Source Files:", "0.00%"},
			wantNotContains: []string{
				"Critical Untested Files",
			},
		},
		{
			name: "half covered",
			result: m.NewAnalysisResult(
				[]m.Path{"backend/user.js"},
				[]m.Path{"frontend/Button.jsx"},
			),
			limit: 10,
			wantContains: []string{
				"Tested Files:",
				"Untested Files:",
				"50.00%",
				"Critical Untested Files (first 10):",
				"  - frontend/Button.jsx",
			},
		},
		{
			name:         "fully covered",
			result:       m.NewAnalysisResult([]m.Path{"a.js", "b.ts"}, nil),
			limit:        10,
			wantContains: []string{"100.00%"},
			wantNotContains: []string{
				"Critical Untested Files",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newBufferedUI()

			err := ui.DisplayCoverageReport(context.Background(), tt.result, tt.limit)
			require.NoError(t, err)

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}

			for _, unwanted := range tt.wantNotContains {
				assert.NotContains(t, buf.String(), unwanted)
			}
		})
	}
}

func TestSimpleUI_DisplayCoverageReport_LimitsUntestedList(t *testing.T) {
	untested := make([]m.Path, 0, 12)
	for i := 0; i < 12; i++ {
		untested = append(untested, m.Path(fmt.Sprintf("src/file%02d.js", i)))
	}

	ui, buf := newBufferedUI()
	require.NoError(t, ui.DisplayCoverageReport(context.Background(), m.NewAnalysisResult(nil, untested), 10))

	out := buf.String()
	assert.Contains(t, out, "src/file00.js")
	assert.Contains(t, out, "src/file09.js")
	assert.NotContains(t, out, "src/file10.js")
	assert.NotContains(t, out, "src/file11.js")
}

func TestSimpleUI_DisplayCoverageReport_CancelledContext(t *testing.T) {
	ui, buf := newBufferedUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.DisplayCoverageReport(ctx, m.NewAnalysisResult(nil, nil), 10)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestSimpleUI_DisplayStructuredReport(t *testing.T) {
	ui, buf := newBufferedUI()
	result := m.NewAnalysisResult([]m.Path{"backend/user.js"}, []m.Path{"frontend/Button.jsx"})

	require.NoError(t, ui.DisplayStructuredReport(context.Background(), adapter.FormatJSON, result))
	assert.Contains(t, buf.String(), `"total_source_files": 2`)
	assert.Contains(t, buf.String(), `"frontend/Button.jsx"`)
}

func TestSimpleUI_Messages(t *testing.T) {
	ctx := context.Background()

	t.Run("run info", func(t *testing.T) {
		ui, buf := newBufferedUI()
		ui.DisplayRunInfo(ctx, "CoverageAnalyzer", m.Path("/work/project"))
		assert.Equal(t, "🚀 Running CoverageAnalyzer...\n📁 Root: /work/project\n", buf.String())
	})

	t.Run("run info without root", func(t *testing.T) {
		ui, buf := newBufferedUI()
		ui.DisplayRunInfo(ctx, "TestSuiteGenerator", "")
		assert.Equal(t, "🚀 Running TestSuiteGenerator...\n", buf.String())
	})

	t.Run("scaffold created", func(t *testing.T) {
		ui, buf := newBufferedUI()
		ui.DisplayScaffoldCreated(ctx, m.Path("src/Header.test.jsx"))
		assert.Equal(t, "✅ Created test: src/Header.test.jsx\n", buf.String())
	})

	t.Run("warning", func(t *testing.T) {
		ui, buf := newBufferedUI()
		ui.DisplayWarning(ctx, "Test already exists: a.test.js")
		assert.Equal(t, "⚠️  Test already exists: a.test.js\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		ui, buf := newBufferedUI()
		ui.DisplayError(ctx, errors.New("boom"))
		assert.Equal(t, "❌ Error: boom\n", buf.String())
	})

	t.Run("progress", func(t *testing.T) {
		ui, buf := newBufferedUI()
		ui.DisplayProgress(ctx, "📊 Scanning project structure...")
		assert.Equal(t, "📊 Scanning project structure...\n", buf.String())
	})
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	plainUI, ok := NewUI(cmd, false).(*SimpleUI)
	require.True(t, ok)
	assert.Equal(t, "text", plainUI.palette.title("text"))

	styledUI, ok := NewUI(cmd, true).(*SimpleUI)
	require.True(t, ok)
	assert.NotNil(t, styledUI.palette.title)
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
