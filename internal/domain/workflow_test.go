package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"qacheck.dev/pkg/qacheck/internal/adapter"
	adaptermocks "qacheck.dev/pkg/qacheck/internal/adapter/mocks"
	controllermocks "qacheck.dev/pkg/qacheck/internal/controller/mocks"
	domain "qacheck.dev/pkg/qacheck/internal/domain"
	domainmocks "qacheck.dev/pkg/qacheck/internal/domain/mocks"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

type workflowMocks struct {
	fs        *adaptermocks.MockSourceFSAdapter
	store     *adaptermocks.MockReportStore
	ui        *controllermocks.MockUI
	analyzer  *domainmocks.MockAnalyzer
	generator *domainmocks.MockGenerator
}

func newWorkflowUnderTest(t *testing.T) (domain.Workflow, workflowMocks) {
	mocks := workflowMocks{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		store:     adaptermocks.NewMockReportStore(t),
		ui:        controllermocks.NewMockUI(t),
		analyzer:  domainmocks.NewMockAnalyzer(t),
		generator: domainmocks.NewMockGenerator(t),
	}

	wf := domain.NewWorkflow(mocks.fs, mocks.store, mocks.ui, mocks.analyzer, mocks.generator)

	return wf, mocks
}

func TestWorkflow_Coverage_Success(t *testing.T) {
	// Arrange
	wf, mocks := newWorkflowUnderTest(t)
	result := m.NewAnalysisResult([]m.Path{"backend/user.js"}, []m.Path{"frontend/Button.jsx"})

	mocks.fs.On("AbsPath", m.Path(".")).Return(m.Path("/work"), nil).Once()
	mocks.ui.On("DisplayRunInfo", mock.Anything, "CoverageAnalyzer", m.Path("/work")).Return().Once()
	mocks.analyzer.On("Analyze", mock.Anything, m.Path("/work")).Return(result, nil).Once()
	mocks.ui.On("DisplayCoverageReport", mock.Anything, result, 10).Return(nil).Once()

	// Act
	err := wf.Coverage(context.Background(), domain.CoverageArgs{Root: ".", Limit: 10})

	// Assert
	require.NoError(t, err)
	mocks.ui.AssertNotCalled(t, "DisplayProgress", mock.Anything, mock.Anything)
	mocks.ui.AssertNotCalled(t, "DisplayStructuredReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Coverage_VerboseWithStructuredOutputAndReport(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	result := m.NewAnalysisResult(nil, []m.Path{"src/app.js"})

	var order []string

	mocks.fs.On("AbsPath", m.Path("app")).Return(m.Path("/work/app"), nil).Once()
	mocks.ui.On("DisplayRunInfo", mock.Anything, "CoverageAnalyzer", m.Path("/work/app")).Return().Once()
	mocks.ui.On("DisplayProgress", mock.Anything, "📊 Scanning project structure...").Return().Once()
	mocks.analyzer.On("Analyze", mock.Anything, m.Path("/work/app")).Return(result, nil).Once()
	mocks.ui.On("DisplayProgress", mock.Anything, "Found 1 source file(s)").Return().Once()
	mocks.ui.On("DisplayCoverageReport", mock.Anything, result, 5).
		Run(func(mock.Arguments) { order = append(order, "report") }).
		Return(nil).Once()
	mocks.ui.On("DisplayStructuredReport", mock.Anything, adapter.FormatJSON, result).
		Run(func(mock.Arguments) { order = append(order, "json") }).
		Return(nil).Once()
	mocks.ui.On("DisplayStructuredReport", mock.Anything, adapter.FormatYAML, result).
		Run(func(mock.Arguments) { order = append(order, "yaml") }).
		Return(nil).Once()
	mocks.store.On("SaveReport", m.Path("out/report.json"), result).Return(nil).Once()
	mocks.ui.On("DisplayProgress", mock.Anything, "Report saved to out/report.json").Return().Once()

	err := wf.Coverage(context.Background(), domain.CoverageArgs{
		Root:       "app",
		Verbose:    true,
		Limit:      5,
		Formats:    []adapter.ReportFormat{adapter.FormatJSON, adapter.FormatYAML},
		ReportPath: "out/report.json",
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"report", "json", "yaml"}, order)
}

func TestWorkflow_Coverage_ScanFailure(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	scanErr := fmt.Errorf("%w: permission denied", domain.ErrScanFailure)

	mocks.fs.On("AbsPath", m.Path("/locked")).Return(m.Path("/locked"), nil).Once()
	mocks.ui.On("DisplayRunInfo", mock.Anything, "CoverageAnalyzer", m.Path("/locked")).Return().Once()
	mocks.analyzer.On("Analyze", mock.Anything, m.Path("/locked")).Return(m.AnalysisResult{}, scanErr).Once()
	mocks.ui.On("DisplayError", mock.Anything, scanErr).Return().Once()

	err := wf.Coverage(context.Background(), domain.CoverageArgs{Root: "/locked", Limit: 10})

	require.ErrorIs(t, err, domain.ErrScanFailure)
	mocks.ui.AssertNotCalled(t, "DisplayCoverageReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Coverage_SaveReportFailure(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	result := m.NewAnalysisResult(nil, nil)
	saveErr := errors.New("disk full")

	mocks.fs.On("AbsPath", m.Path(".")).Return(m.Path("/work"), nil).Once()
	mocks.ui.On("DisplayRunInfo", mock.Anything, "CoverageAnalyzer", m.Path("/work")).Return().Once()
	mocks.analyzer.On("Analyze", mock.Anything, m.Path("/work")).Return(result, nil).Once()
	mocks.ui.On("DisplayCoverageReport", mock.Anything, result, 10).Return(nil).Once()
	mocks.store.On("SaveReport", m.Path("r.yaml"), result).Return(saveErr).Once()

	err := wf.Coverage(context.Background(), domain.CoverageArgs{Root: ".", Limit: 10, ReportPath: "r.yaml"})
	require.ErrorIs(t, err, saveErr)
}

func TestWorkflow_Scaffold_Success(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	scaffold := m.Scaffold{
		Source:      "/work/frontend/Header.jsx",
		Destination: "/work/frontend/Header.test.jsx",
		Identifier:  "Header",
		Template:    m.TemplateFrontend,
	}

	mocks.ui.On("DisplayRunInfo", mock.Anything, "TestSuiteGenerator", m.Path("")).Return().Once()
	mocks.generator.On("Plan", mock.Anything, m.Path("frontend/Header.jsx")).Return(scaffold, nil).Once()
	mocks.generator.On("Write", mock.Anything, scaffold).Return(nil).Once()
	mocks.ui.On("DisplayScaffoldCreated", mock.Anything, scaffold.Destination).Return().Once()

	err := wf.Scaffold(context.Background(), domain.ScaffoldArgs{Target: "frontend/Header.jsx"})
	require.NoError(t, err)
}

func TestWorkflow_Scaffold_PreconditionFailuresAreReported(t *testing.T) {
	tests := []struct {
		name      string
		planErr   error
		wantWarn  string
		wantError string
	}{
		{
			name:      "not found",
			planErr:   fmt.Errorf("%w %s", domain.ErrTargetNotFound, "/work/missing.js"),
			wantError: "File not found /work/missing.js",
		},
		{
			name:      "directory",
			planErr:   fmt.Errorf("%w: %s", domain.ErrInvalidTarget, "/work/src"),
			wantError: "Target must be a file, not a directory: /work/src",
		},
		{
			name:     "existing test",
			planErr:  fmt.Errorf("%w: %s", domain.ErrDestinationExists, "/work/user.test.js"),
			wantWarn: "Test already exists: /work/user.test.js",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wf, mocks := newWorkflowUnderTest(t)

			mocks.ui.On("DisplayRunInfo", mock.Anything, "TestSuiteGenerator", m.Path("")).Return().Once()
			mocks.generator.On("Plan", mock.Anything, m.Path("target")).Return(m.Scaffold{}, tt.planErr).Once()

			if tt.wantWarn != "" {
				mocks.ui.On("DisplayWarning", mock.Anything, tt.wantWarn).Return().Once()
			}

			if tt.wantError != "" {
				mocks.ui.On("DisplayError", mock.Anything, mock.MatchedBy(func(err error) bool {
					return err.Error() == tt.wantError
				})).Return().Once()
			}

			err := wf.Scaffold(context.Background(), domain.ScaffoldArgs{Target: "target"})
			require.NoError(t, err)
			mocks.generator.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
		})
	}
}

func TestWorkflow_Scaffold_WriteRaceIsReportedAsWarning(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	scaffold := m.Scaffold{Destination: "/work/user.test.js", Identifier: "user", Template: m.TemplateBackend}

	mocks.ui.On("DisplayRunInfo", mock.Anything, "TestSuiteGenerator", m.Path("")).Return().Once()
	mocks.generator.On("Plan", mock.Anything, m.Path("user.js")).Return(scaffold, nil).Once()
	mocks.generator.On("Write", mock.Anything, scaffold).
		Return(fmt.Errorf("%w: %s", domain.ErrDestinationExists, scaffold.Destination)).Once()
	mocks.ui.On("DisplayWarning", mock.Anything, "Test already exists: /work/user.test.js").Return().Once()

	err := wf.Scaffold(context.Background(), domain.ScaffoldArgs{Target: "user.js"})
	require.NoError(t, err)
}

func TestWorkflow_Scaffold_UnexpectedErrorFails(t *testing.T) {
	wf, mocks := newWorkflowUnderTest(t)
	ioErr := errors.New("input/output error")

	mocks.ui.On("DisplayRunInfo", mock.Anything, "TestSuiteGenerator", m.Path("")).Return().Once()
	mocks.generator.On("Plan", mock.Anything, m.Path("user.js")).Return(m.Scaffold{}, ioErr).Once()
	mocks.ui.On("DisplayError", mock.Anything, ioErr).Return().Once()

	err := wf.Scaffold(context.Background(), domain.ScaffoldArgs{Target: "user.js"})
	require.ErrorIs(t, err, ioErr)
}
