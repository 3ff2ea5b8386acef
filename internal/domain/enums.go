package domain

import "strings"

// PaymentStatus is the settlement state of a single installment row.
type PaymentStatus string

const (
	PaymentStatusPaid  PaymentStatus = "PAID"
	PaymentStatusOther PaymentStatus = "OTHER"
)

// paidLabel is the spreadsheet value that marks an installment as settled.
const paidLabel = "PAGO"

// ParsePaymentStatus maps a raw STATUS PGTO cell to a PaymentStatus.
func ParsePaymentStatus(raw string) PaymentStatus {
	if strings.ToUpper(raw) == paidLabel {
		return PaymentStatusPaid
	}
	return PaymentStatusOther
}

// OutcomeKind classifies the result of a generation request.
type OutcomeKind string

const (
	OutcomeNotFound           OutcomeKind = "not_found"
	OutcomeNonPDFGroup        OutcomeKind = "tutorial"
	OutcomeNoEligiblePayments OutcomeKind = "no_eligible_payments"
	OutcomeDeclaration        OutcomeKind = "declaracao"
)

// LookupStrategy identifies which student identifier a LookupKey matches on.
type LookupStrategy string

const (
	LookupByNationalID LookupStrategy = "cpf"
	LookupByName       LookupStrategy = "nome"
	LookupByEmail      LookupStrategy = "email"
)

// Spreadsheet column headers. The holder name lives in the first column,
// whatever its header says.
const (
	ColumnNationalID  = "CPF"
	ColumnEmail       = "EMAIL"
	ColumnGroup       = "Turma"
	ColumnInstallment = "PARCELA"
	ColumnMonthYear   = "MêS PARCELA"
	ColumnAmount      = "VALOR PARCELA"
	ColumnStatus      = "STATUS PGTO"
)

const (
	// TargetYear is the calendar year the declaration covers.
	TargetYear = 2025
	// MaxInstallments is the number of rows in the declaration table.
	MaxInstallments = 12
)
