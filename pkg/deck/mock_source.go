package deck

import (
	"github.com/stretchr/testify/mock"
)

// MockSource is a mock implementation of Source
type MockSource struct {
	mock.Mock
}

// NewMockSource creates a new mock source
func NewMockSource(t mock.TestingT) *MockSource {
	mock := &MockSource{}
	mock.Test(t)
	return mock
}

// Intn mocks the Intn method
func (m *MockSource) Intn(n int) int {
	args := m.Called(n)
	return args.Int(0)
}
