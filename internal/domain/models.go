package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is one spreadsheet row keyed by header.
type Record map[string]string

// Get returns the raw cell value for column, or "" when absent.
func (r Record) Get(column string) string {
	return r[column]
}

// Table is the bulk result of reading the payments sheet.
type Table struct {
	Headers []string
	Records []Record
}

// NameColumn returns the header of the holder-name column (the first one).
func (t *Table) NameColumn() string {
	if len(t.Headers) == 0 {
		return ""
	}
	return t.Headers[0]
}

// NewTable builds a Table from raw cell values where the first row is the
// header row. Short rows are padded with empty cells, extra cells are dropped
// and rows with no content at all are skipped.
func NewTable(values [][]string) *Table {
	t := &Table{}
	if len(values) == 0 {
		return t
	}
	t.Headers = make([]string, len(values[0]))
	for i, h := range values[0] {
		t.Headers[i] = strings.TrimSpace(h)
	}
	for _, row := range values[1:] {
		if isBlankRow(row) {
			continue
		}
		rec := make(Record, len(t.Headers))
		for i, h := range t.Headers {
			if h == "" {
				continue
			}
			if i < len(row) {
				rec[h] = row[i]
			} else {
				rec[h] = ""
			}
		}
		t.Records = append(t.Records, rec)
	}
	return t
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// PaymentRow is one parsed installment of a student.
type PaymentRow struct {
	HolderName        string
	NationalID        string
	Email             string
	GroupID           string
	InstallmentNumber int
	Month             int
	Year              int
	Amount            decimal.Decimal
	Status            PaymentStatus
}

// LookupKey selects a student by exactly one identifier. Build it with
// NewLookupKey or one of the By* constructors.
type LookupKey struct {
	strategy LookupStrategy
	value    string
}

func ByNationalID(id string) LookupKey { return LookupKey{strategy: LookupByNationalID, value: id} }
func ByName(name string) LookupKey     { return LookupKey{strategy: LookupByName, value: name} }
func ByEmail(email string) LookupKey   { return LookupKey{strategy: LookupByEmail, value: email} }

// NewLookupKey picks the most specific identifier supplied: national ID,
// then name, then email.
func NewLookupKey(nationalID, name, email string) (LookupKey, error) {
	switch {
	case strings.TrimSpace(nationalID) != "":
		return ByNationalID(nationalID), nil
	case strings.TrimSpace(name) != "":
		return ByName(name), nil
	case strings.TrimSpace(email) != "":
		return ByEmail(email), nil
	}
	return LookupKey{}, fmt.Errorf("%w: one of cpf, nome or email is required", ErrValidation)
}

func (k LookupKey) Strategy() LookupStrategy { return k.strategy }
func (k LookupKey) Value() string            { return k.value }

// StudentLookupResult carries the student's group and their paid installments
// of the target year. GroupID is only meaningful when Found is true; Payments
// may be empty even then.
type StudentLookupResult struct {
	Found    bool
	GroupID  string
	Payments []PaymentRow
}

// Installment is one formatted line of the declaration table.
type Installment struct {
	Number     string
	MonthLabel string
	Amount     string
}

// Empty reports whether the slot is a placeholder.
func (i Installment) Empty() bool {
	return i.Amount == ""
}

// DeclarationData feeds the declaration template.
type DeclarationData struct {
	HolderName   string
	NationalID   string
	GroupID      string
	Year         int
	Total        string
	TotalAmount  decimal.Decimal
	Installments []Installment
}

// Table returns the installments padded with placeholders to MaxInstallments slots.
func (d *DeclarationData) Table() [MaxInstallments]Installment {
	var slots [MaxInstallments]Installment
	copy(slots[:], d.Installments)
	return slots
}

// Outcome is the result of a generation request handed to the HTTP layer.
type Outcome struct {
	Kind    OutcomeKind
	GroupID string

	// Set only for OutcomeDeclaration.
	PDF              []byte
	Filename         string
	InstallmentCount int
	Total            string
	Data             *DeclarationData
}
