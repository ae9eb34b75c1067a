// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"qacheck.dev/pkg/qacheck/internal/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockWorkflow is a mock implementation of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a mock and registers expectation assertions on cleanup.
func NewMockWorkflow(t testingT) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

// Coverage provides a mock function.
func (_m *MockWorkflow) Coverage(ctx context.Context, args domain.CoverageArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}

// Scaffold provides a mock function.
func (_m *MockWorkflow) Scaffold(ctx context.Context, args domain.ScaffoldArgs) error {
	ret := _m.Called(ctx, args)
	return ret.Error(0)
}
