package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"qacheck.dev/pkg/qacheck/internal/domain"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

// MockAnalyzer is a mock implementation of domain.Analyzer.
type MockAnalyzer struct {
	mock.Mock
}

var _ domain.Analyzer = (*MockAnalyzer)(nil)

// NewMockAnalyzer creates a mock and registers expectation assertions on cleanup.
func NewMockAnalyzer(t testingT) *MockAnalyzer {
	mockAnalyzer := &MockAnalyzer{}
	mockAnalyzer.Mock.Test(t)

	t.Cleanup(func() { mockAnalyzer.AssertExpectations(t) })

	return mockAnalyzer
}

// Analyze provides a mock function.
func (_m *MockAnalyzer) Analyze(ctx context.Context, root m.Path) (m.AnalysisResult, error) {
	ret := _m.Called(ctx, root)
	return ret.Get(0).(m.AnalysisResult), ret.Error(1)
}
