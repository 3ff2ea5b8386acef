package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/format"
	"irpfdecl/internal/port"
)

// LookupService finds a student's group and target-year paid installments.
type LookupService interface {
	Lookup(ctx context.Context, key domain.LookupKey) (*domain.StudentLookupResult, error)
}

type lookupService struct {
	source port.RowSource
}

// NewLookupService creates a LookupService reading from source.
func NewLookupService(source port.RowSource) LookupService {
	return &lookupService{source: source}
}

func (s *lookupService) Lookup(ctx context.Context, key domain.LookupKey) (*domain.StudentLookupResult, error) {
	table, err := s.source.FetchRows(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrDataSource, err)
	}
	log.Printf("[lookup] fetched %d rows", len(table.Records))

	matched := filterStudent(table, key)
	log.Printf("[lookup] %d rows matched by %s", len(matched), key.Strategy())
	if len(matched) == 0 {
		return &domain.StudentLookupResult{}, nil
	}

	// The group comes from the first row regardless of year or status.
	result := &domain.StudentLookupResult{
		Found:   true,
		GroupID: strings.TrimSpace(matched[0].Get(domain.ColumnGroup)),
	}

	nameColumn := table.NameColumn()
	for _, rec := range matched {
		month, year := format.ParseMonthYear(rec.Get(domain.ColumnMonthYear))
		if year != domain.TargetYear {
			continue
		}
		status := domain.ParsePaymentStatus(rec.Get(domain.ColumnStatus))
		if status != domain.PaymentStatusPaid {
			continue
		}
		result.Payments = append(result.Payments, domain.PaymentRow{
			HolderName:        rec.Get(nameColumn),
			NationalID:        rec.Get(domain.ColumnNationalID),
			Email:             rec.Get(domain.ColumnEmail),
			GroupID:           rec.Get(domain.ColumnGroup),
			InstallmentNumber: parseInstallment(rec.Get(domain.ColumnInstallment)),
			Month:             month,
			Year:              year,
			Amount:            format.ParseMoney(rec.Get(domain.ColumnAmount)),
			Status:            status,
		})
	}
	log.Printf("[lookup] %d paid installments in %d", len(result.Payments), domain.TargetYear)

	return result, nil
}

// filterStudent keeps the records that belong to the student identified by key.
func filterStudent(table *domain.Table, key domain.LookupKey) []domain.Record {
	var match func(domain.Record) bool
	switch key.Strategy() {
	case domain.LookupByNationalID:
		want := format.Digits(key.Value())
		match = func(r domain.Record) bool {
			return format.Digits(r.Get(domain.ColumnNationalID)) == want
		}
	case domain.LookupByName:
		want := strings.ToLower(key.Value())
		nameColumn := table.NameColumn()
		match = func(r domain.Record) bool {
			return strings.Contains(strings.ToLower(r.Get(nameColumn)), want)
		}
	case domain.LookupByEmail:
		want := strings.ToLower(key.Value())
		match = func(r domain.Record) bool {
			return strings.ToLower(r.Get(domain.ColumnEmail)) == want
		}
	default:
		return nil
	}

	var out []domain.Record
	for _, rec := range table.Records {
		if match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func parseInstallment(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}
