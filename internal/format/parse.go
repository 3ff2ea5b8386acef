package format

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var monthNumbers = map[string]int{
	"janeiro":   1,
	"fevereiro": 2,
	"março":     3,
	"abril":     4,
	"maio":      5,
	"junho":     6,
	"julho":     7,
	"agosto":    8,
	"setembro":  9,
	"outubro":   10,
	"novembro":  11,
	"dezembro":  12,
}

// ParseMonthYear parses a "janeiro-25" style token. Unknown month names give
// month 0 and a non-numeric year part gives year 0.
func ParseMonthYear(raw string) (month, year int) {
	if raw == "" {
		return 0, 0
	}
	parts := strings.Split(strings.ToLower(raw), "-")
	month = monthNumbers[strings.TrimSpace(parts[0])]
	if len(parts) > 1 {
		if yy, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil {
			year = 2000 + yy
		}
	}
	return month, year
}

var moneyNoise = regexp.MustCompile(`[R$\s.]`)

// ParseMoney converts "R$ 1.500,00" into 1500.00. Anything unparseable is zero.
func ParseMoney(raw string) decimal.Decimal {
	s := moneyNoise.ReplaceAllString(raw, "")
	s = strings.Replace(s, ",", ".", 1)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
