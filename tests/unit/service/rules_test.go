package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/service"
)

func TestClassify(t *testing.T) {
	paid := []domain.PaymentRow{{InstallmentNumber: 1}}

	tests := []struct {
		name   string
		result *domain.StudentLookupResult
		want   domain.OutcomeKind
	}{
		{"nil result", nil, domain.OutcomeNotFound},
		{"not found", &domain.StudentLookupResult{}, domain.OutcomeNotFound},
		{"tutorial group", &domain.StudentLookupResult{Found: true, GroupID: "SEI", Payments: paid}, domain.OutcomeNonPDFGroup},
		{"numeric tutorial group", &domain.StudentLookupResult{Found: true, GroupID: "3"}, domain.OutcomeNonPDFGroup},
		{"empty group", &domain.StudentLookupResult{Found: true, GroupID: ""}, domain.OutcomeNonPDFGroup},
		{"no payments", &domain.StudentLookupResult{Found: true, GroupID: "T2"}, domain.OutcomeNoEligiblePayments},
		{"eligible", &domain.StudentLookupResult{Found: true, GroupID: "t1", Payments: paid}, domain.OutcomeDeclaration},
		{"eligible numeral", &domain.StudentLookupResult{Found: true, GroupID: " 2 ", Payments: paid}, domain.OutcomeDeclaration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Classify(tt.result))
		})
	}
}
