package format

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LongDate renders t as a pt-BR long date, e.g. "05 de março de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%02d de %s de %d", t.Day(), strings.ToLower(monthNames[t.Month()-1]), t.Year())
}

// ASCIIFold strips diacritics: "João Conceição" becomes "Joao Conceicao".
func ASCIIFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// DeclarationFilename returns Declaracao_IRPF_<name>_<epoch ms>.pdf with the
// holder name folded to ASCII and whitespace runs turned into underscores.
func DeclarationFilename(holderName string, now time.Time) string {
	name := whitespaceRun.ReplaceAllString(ASCIIFold(holderName), "_")
	return fmt.Sprintf("Declaracao_IRPF_%s_%d.pdf", name, now.UnixMilli())
}

// MaskCPF replaces every digit that is followed by at least four more digits
// with '*', so only the tail of the document shows up in logs.
func MaskCPF(raw string) string {
	b := []byte(raw)
	for i := range b {
		if isDigit(raw[i]) && followedByDigits(raw, i+1, 4) {
			b[i] = '*'
		}
	}
	return string(b)
}

func followedByDigits(s string, from, n int) bool {
	if from+n > len(s) {
		return false
	}
	for i := from; i < from+n; i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
