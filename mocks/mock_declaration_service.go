package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/service"
)

// MockDeclarationService is a mock implementation of service.DeclarationService.
type MockDeclarationService struct {
	mock.Mock
}

func (m *MockDeclarationService) Generate(ctx context.Context, input service.GenerateInput) (*domain.Outcome, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Outcome), args.Error(1)
}

func (m *MockDeclarationService) SourceConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}
