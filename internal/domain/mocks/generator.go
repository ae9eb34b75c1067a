package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"qacheck.dev/pkg/qacheck/internal/domain"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

// MockGenerator is a mock implementation of domain.Generator.
type MockGenerator struct {
	mock.Mock
}

var _ domain.Generator = (*MockGenerator)(nil)

// NewMockGenerator creates a mock and registers expectation assertions on cleanup.
func NewMockGenerator(t testingT) *MockGenerator {
	mockGenerator := &MockGenerator{}
	mockGenerator.Mock.Test(t)

	t.Cleanup(func() { mockGenerator.AssertExpectations(t) })

	return mockGenerator
}

// Plan provides a mock function.
func (_m *MockGenerator) Plan(ctx context.Context, target m.Path) (m.Scaffold, error) {
	ret := _m.Called(ctx, target)
	return ret.Get(0).(m.Scaffold), ret.Error(1)
}

// Write provides a mock function.
func (_m *MockGenerator) Write(ctx context.Context, scaffold m.Scaffold) error {
	ret := _m.Called(ctx, scaffold)
	return ret.Error(0)
}
