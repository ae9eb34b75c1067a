// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"os"

	"github.com/stretchr/testify/mock"
	"qacheck.dev/pkg/qacheck/internal/adapter"
	m "qacheck.dev/pkg/qacheck/internal/model"
)

// MockSourceFSAdapter is a mock implementation of adapter.SourceFSAdapter.
type MockSourceFSAdapter struct {
	mock.Mock
}

var _ adapter.SourceFSAdapter = (*MockSourceFSAdapter)(nil)

// NewMockSourceFSAdapter creates a mock and registers expectation assertions on cleanup.
func NewMockSourceFSAdapter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockSourceFSAdapter {
	mockAdapter := &MockSourceFSAdapter{}
	mockAdapter.Mock.Test(t)

	t.Cleanup(func() { mockAdapter.AssertExpectations(t) })

	return mockAdapter
}

// Walk provides a mock function.
func (_m *MockSourceFSAdapter) Walk(root m.Path, fn adapter.FilepathWalkFunc) error {
	ret := _m.Called(root, fn)
	return ret.Error(0)
}

// FileInfo provides a mock function.
func (_m *MockSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	ret := _m.Called(path)

	var info os.FileInfo
	if v := ret.Get(0); v != nil {
		info = v.(os.FileInfo)
	}

	return info, ret.Error(1)
}

// CreateFile provides a mock function.
func (_m *MockSourceFSAdapter) CreateFile(path m.Path, content []byte, perm os.FileMode) error {
	ret := _m.Called(path, content, perm)
	return ret.Error(0)
}

// AbsPath provides a mock function.
func (_m *MockSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	ret := _m.Called(path)
	return ret.Get(0).(m.Path), ret.Error(1)
}

// ResolvePath provides a mock function.
func (_m *MockSourceFSAdapter) ResolvePath(path m.Path) (m.Path, error) {
	ret := _m.Called(path)
	return ret.Get(0).(m.Path), ret.Error(1)
}

// RelPath provides a mock function.
func (_m *MockSourceFSAdapter) RelPath(base, target m.Path) (m.Path, error) {
	ret := _m.Called(base, target)
	return ret.Get(0).(m.Path), ret.Error(1)
}

// JoinPath provides a mock function.
func (_m *MockSourceFSAdapter) JoinPath(elem ...string) m.Path {
	args := make([]interface{}, len(elem))
	for i, e := range elem {
		args[i] = e
	}

	ret := _m.Called(args...)

	return ret.Get(0).(m.Path)
}
