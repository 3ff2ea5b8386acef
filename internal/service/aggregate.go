package service

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/format"
)

// Aggregation is the installment table and total computed from paid rows.
type Aggregation struct {
	Installments []domain.Installment
	Total        decimal.Decimal
}

// Aggregate sorts payments by installment number, keeps the first
// MaxInstallments for display and sums every payment into the total.
// A student with more than twelve paid rows gets a total larger than the
// visible table.
func Aggregate(payments []domain.PaymentRow) Aggregation {
	sorted := make([]domain.PaymentRow, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].InstallmentNumber < sorted[j].InstallmentNumber
	})

	shown := sorted
	if len(shown) > domain.MaxInstallments {
		shown = shown[:domain.MaxInstallments]
	}

	agg := Aggregation{
		Installments: make([]domain.Installment, 0, len(shown)),
		Total:        decimal.Zero,
	}
	for _, p := range shown {
		agg.Installments = append(agg.Installments, domain.Installment{
			Number:     strconv.Itoa(p.InstallmentNumber),
			MonthLabel: format.MonthName(p.Month),
			Amount:     format.Currency(p.Amount),
		})
	}
	for _, p := range payments {
		agg.Total = agg.Total.Add(p.Amount)
	}
	return agg
}
