package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"irpfdecl/internal/domain"
)

// MockRowSource is a mock implementation of port.RowSource.
type MockRowSource struct {
	mock.Mock
}

func (m *MockRowSource) FetchRows(ctx context.Context) (*domain.Table, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockRowSource) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
