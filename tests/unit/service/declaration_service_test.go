package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/service"
	"irpfdecl/mocks"
)

func newDeclarationService(table *domain.Table) (service.DeclarationService, *mocks.MockRowSource, *mocks.MockDeclarationRenderer) {
	src := new(mocks.MockRowSource)
	src.On("FetchRows", mock.Anything).Return(table, nil)
	renderer := new(mocks.MockDeclarationRenderer)
	return service.NewDeclarationService(src, renderer), src, renderer
}

func TestDeclarationService_Generate_Declaration(t *testing.T) {
	table := paymentsTable(paidRows("José Conceição", "12345678901", "T1", 3, "R$ 100,00")...)
	svc, _, renderer := newDeclarationService(table)

	renderer.On("Render", mock.Anything, mock.MatchedBy(func(d *domain.DeclarationData) bool {
		return d.Total == "R$ 300,00" &&
			len(d.Installments) == 3 &&
			d.HolderName == "José Conceição" &&
			d.NationalID == "123.456.789-01" &&
			d.GroupID == "T1"
	})).Return([]byte("%PDF-1.4"), nil)

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{
		Name:       "José Conceição",
		NationalID: "123.456.789-01",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDeclaration, outcome.Kind)
	assert.Equal(t, "T1", outcome.GroupID)
	assert.Equal(t, []byte("%PDF-1.4"), outcome.PDF)
	assert.Equal(t, 3, outcome.InstallmentCount)
	assert.Equal(t, "R$ 300,00", outcome.Total)
	assert.True(t, strings.HasPrefix(outcome.Filename, "Declaracao_IRPF_Jose_Conceicao_"))
	assert.True(t, strings.HasSuffix(outcome.Filename, ".pdf"))
	renderer.AssertExpectations(t)
}

func TestDeclarationService_Generate_TutorialGroup(t *testing.T) {
	table := paymentsTable(paidRows("Ana Souza", "11111111111", "SEI", 2, "100")...)
	svc, _, renderer := newDeclarationService(table)

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{Name: "Ana Souza", NationalID: "11111111111"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNonPDFGroup, outcome.Kind)
	assert.Equal(t, "SEI", outcome.GroupID)
	assert.Nil(t, outcome.PDF)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestDeclarationService_Generate_NoEligiblePayments(t *testing.T) {
	table := paymentsTable(
		row("Ana Souza", "11111111111", "", "T2", 1, "janeiro-24", "100", "PAGO"),
		row("Ana Souza", "11111111111", "", "T2", 2, "janeiro-25", "100", "PENDENTE"),
	)
	svc, _, renderer := newDeclarationService(table)

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{Name: "Ana Souza", NationalID: "11111111111"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNoEligiblePayments, outcome.Kind)
	assert.Equal(t, "T2", outcome.GroupID)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestDeclarationService_Generate_NotFound(t *testing.T) {
	table := paymentsTable(paidRows("Ana Souza", "11111111111", "T1", 1, "100")...)
	svc, _, renderer := newDeclarationService(table)

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{Name: "Carlos", NationalID: "22222222222"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeNotFound, outcome.Kind)
	renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
}

func TestDeclarationService_Generate_CPFTakesPriorityOverName(t *testing.T) {
	table := paymentsTable(
		row("Ana Souza", "11111111111", "", "SEI", 1, "janeiro-25", "100", "PAGO"),
		row("Bruno Lima", "22222222222", "", "T1", 1, "janeiro-25", "100", "PAGO"),
	)
	svc, _, renderer := newDeclarationService(table)
	renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{Name: "Ana Souza", NationalID: "222.222.222-22"})

	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeDeclaration, outcome.Kind)
	assert.Equal(t, "T1", outcome.GroupID)
}

func TestDeclarationService_Generate_MoreThanTwelveInstallments(t *testing.T) {
	table := paymentsTable(paidRows("Ana Souza", "11111111111", "T1", 14, "R$ 100,00")...)
	svc, _, renderer := newDeclarationService(table)
	renderer.On("Render", mock.Anything, mock.MatchedBy(func(d *domain.DeclarationData) bool {
		return len(d.Installments) == 12 && d.Total == "R$ 1.400,00"
	})).Return([]byte("%PDF"), nil)

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{Name: "Ana Souza", NationalID: "11111111111"})

	require.NoError(t, err)
	assert.Equal(t, 14, outcome.InstallmentCount)
	assert.Equal(t, "R$ 1.400,00", outcome.Total)
	renderer.AssertExpectations(t)
}

func TestDeclarationService_Generate_RenderFailure(t *testing.T) {
	table := paymentsTable(paidRows("Ana Souza", "11111111111", "T1", 1, "100")...)
	svc, _, renderer := newDeclarationService(table)
	renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("chrome crashed"))

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{Name: "Ana Souza", NationalID: "11111111111"})

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrRender)
}

func TestDeclarationService_Generate_DataSourceFailure(t *testing.T) {
	src := new(mocks.MockRowSource)
	src.On("FetchRows", mock.Anything).Return(nil, errors.New("quota exceeded"))
	svc := service.NewDeclarationService(src, new(mocks.MockDeclarationRenderer))

	outcome, err := svc.Generate(context.Background(), service.GenerateInput{Name: "Ana", NationalID: "1"})

	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, domain.ErrDataSource)
}

func TestDeclarationService_Generate_NoIdentifiers(t *testing.T) {
	src := new(mocks.MockRowSource)
	svc := service.NewDeclarationService(src, new(mocks.MockDeclarationRenderer))

	_, err := svc.Generate(context.Background(), service.GenerateInput{Name: "  "})

	assert.ErrorIs(t, err, domain.ErrValidation)
	src.AssertNotCalled(t, "FetchRows", mock.Anything)
}

func TestDeclarationService_SourceConfigured(t *testing.T) {
	src := new(mocks.MockRowSource)
	src.On("Configured").Return(false)
	svc := service.NewDeclarationService(src, new(mocks.MockDeclarationRenderer))

	assert.False(t, svc.SourceConfigured())
}
