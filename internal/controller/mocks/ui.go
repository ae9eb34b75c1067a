// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"qacheck.dev/pkg/qacheck/internal/adapter"
	"qacheck.dev/pkg/qacheck/internal/controller"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a mock and registers expectation assertions on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// DisplayRunInfo provides a mock function.
func (_m *MockUI) DisplayRunInfo(ctx context.Context, tool string, root m.Path) {
	_m.Called(ctx, tool, root)
}

// DisplayProgress provides a mock function.
func (_m *MockUI) DisplayProgress(ctx context.Context, message string) {
	_m.Called(ctx, message)
}

// DisplayCoverageReport provides a mock function.
func (_m *MockUI) DisplayCoverageReport(ctx context.Context, result m.AnalysisResult, limit int) error {
	ret := _m.Called(ctx, result, limit)
	return ret.Error(0)
}

// DisplayStructuredReport provides a mock function.
func (_m *MockUI) DisplayStructuredReport(ctx context.Context, format adapter.ReportFormat, result m.AnalysisResult) error {
	ret := _m.Called(ctx, format, result)
	return ret.Error(0)
}

// DisplayScaffoldCreated provides a mock function.
func (_m *MockUI) DisplayScaffoldCreated(ctx context.Context, destination m.Path) {
	_m.Called(ctx, destination)
}

// DisplayWarning provides a mock function.
func (_m *MockUI) DisplayWarning(ctx context.Context, message string) {
	_m.Called(ctx, message)
}

// DisplayError provides a mock function.
func (_m *MockUI) DisplayError(ctx context.Context, err error) {
	_m.Called(ctx, err)
}
