package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/format"
	"irpfdecl/internal/service"
)

func payment(number, month int, amount int64) domain.PaymentRow {
	return domain.PaymentRow{
		InstallmentNumber: number,
		Month:             month,
		Year:              domain.TargetYear,
		Amount:            decimal.NewFromInt(amount),
		Status:            domain.PaymentStatusPaid,
	}
}

func TestAggregate_SortsByInstallment(t *testing.T) {
	agg := service.Aggregate([]domain.PaymentRow{
		payment(3, 3, 100),
		payment(1, 1, 100),
		payment(2, 2, 150),
	})

	require.Len(t, agg.Installments, 3)
	assert.Equal(t, "1", agg.Installments[0].Number)
	assert.Equal(t, "Janeiro", agg.Installments[0].MonthLabel)
	assert.Equal(t, "R$ 150,00", agg.Installments[1].Amount)
	assert.Equal(t, "Março", agg.Installments[2].MonthLabel)
	assert.Equal(t, "R$ 350,00", format.Currency(agg.Total))
}

func TestAggregate_TruncatesTableButTotalsEverything(t *testing.T) {
	var payments []domain.PaymentRow
	for i := 14; i >= 1; i-- {
		payments = append(payments, payment(i, (i-1)%12+1, 100))
	}

	agg := service.Aggregate(payments)

	require.Len(t, agg.Installments, domain.MaxInstallments)
	assert.Equal(t, "1", agg.Installments[0].Number)
	assert.Equal(t, "12", agg.Installments[11].Number)
	assert.True(t, decimal.NewFromInt(1400).Equal(agg.Total))
}

func TestAggregate_DoesNotReorderInput(t *testing.T) {
	payments := []domain.PaymentRow{payment(2, 2, 1), payment(1, 1, 1)}

	service.Aggregate(payments)

	assert.Equal(t, 2, payments[0].InstallmentNumber)
}

func TestAggregate_Empty(t *testing.T) {
	agg := service.Aggregate(nil)

	assert.Empty(t, agg.Installments)
	assert.True(t, agg.Total.IsZero())
}

func TestBuildDeclarationData_PadsTable(t *testing.T) {
	data := service.BuildDeclarationData("Ana Souza", "12345678901", &domain.StudentLookupResult{
		Found:    true,
		GroupID:  "T1",
		Payments: []domain.PaymentRow{payment(1, 1, 1500)},
	})

	assert.Equal(t, "Ana Souza", data.HolderName)
	assert.Equal(t, "123.456.789-01", data.NationalID)
	assert.Equal(t, domain.TargetYear, data.Year)
	assert.Equal(t, "R$ 1.500,00", data.Total)

	slots := data.Table()
	assert.False(t, slots[0].Empty())
	for _, s := range slots[1:] {
		assert.True(t, s.Empty())
	}
}

func TestBuildDeclarationData_Idempotent(t *testing.T) {
	result := &domain.StudentLookupResult{
		Found:    true,
		GroupID:  "T2",
		Payments: []domain.PaymentRow{payment(2, 2, 250), payment(1, 1, 250)},
	}

	first := service.BuildDeclarationData("Bruno", "98765432100", result)
	second := service.BuildDeclarationData("Bruno", "98765432100", result)

	assert.Equal(t, first, second)
}
