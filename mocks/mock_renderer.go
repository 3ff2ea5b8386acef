package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/port"
)

// MockDeclarationRenderer is a mock implementation of port.DeclarationRenderer.
type MockDeclarationRenderer struct {
	mock.Mock
}

func (m *MockDeclarationRenderer) Render(ctx context.Context, data *domain.DeclarationData) ([]byte, error) {
	args := m.Called(ctx, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPDFEngine is a mock implementation of port.PDFEngine.
type MockPDFEngine struct {
	mock.Mock
}

func (m *MockPDFEngine) Render(ctx context.Context, html string, opts port.PDFOptions) ([]byte, error) {
	args := m.Called(ctx, html, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
