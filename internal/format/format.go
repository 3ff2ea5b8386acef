// Package format holds the pt-BR display and parsing helpers used to turn raw
// spreadsheet cells into declaration values.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// eligibleGroups are the live cohorts that receive a generated PDF.
var eligibleGroups = map[string]bool{
	"T1": true,
	"T2": true,
	"1":  true,
	"2":  true,
}

// Digits returns only the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// NationalID formats a CPF as XXX.XXX.XXX-XX. Input that does not carry
// exactly 11 digits is returned unchanged.
func NationalID(raw string) string {
	d := Digits(raw)
	if len(d) != 11 {
		return raw
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
}

// Currency renders amount in Brazilian reais, e.g. "R$ 1.500,00".
func Currency(amount decimal.Decimal) string {
	s := amount.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return "R$ " + b.String()
}

// MonthName returns the Portuguese month name for 1..12 and the number itself otherwise.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return strconv.Itoa(month)
	}
	return monthNames[month-1]
}

// MonthNameString is MonthName for raw cell text; non-numeric input comes back as is.
func MonthNameString(raw string) string {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return raw
	}
	return MonthName(n)
}

// IsPDFEligibleGroup reports whether a cohort label belongs to a live class
// (T1/T2) rather than a self-paced one that only gets the written tutorial.
func IsPDFEligibleGroup(label string) bool {
	return eligibleGroups[strings.ToUpper(strings.TrimSpace(label))]
}
