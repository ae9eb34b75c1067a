package mocks

import (
	"github.com/stretchr/testify/mock"
	"qacheck.dev/pkg/qacheck/internal/adapter"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

// MockReportStore is a mock implementation of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

var _ adapter.ReportStore = (*MockReportStore)(nil)

// NewMockReportStore creates a mock and registers expectation assertions on cleanup.
func NewMockReportStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockReportStore {
	mockStore := &MockReportStore{}
	mockStore.Mock.Test(t)

	t.Cleanup(func() { mockStore.AssertExpectations(t) })

	return mockStore
}

// SaveReport provides a mock function.
func (_m *MockReportStore) SaveReport(path m.Path, result m.AnalysisResult) error {
	ret := _m.Called(path, result)
	return ret.Error(0)
}
