// Package render holds what every declaration layout shares.
package render

import (
	"fmt"
	"strings"

	"irpfdecl/internal/domain"
)

// Issuer identifies the institution that signs the declaration.
type Issuer struct {
	Brand      string
	BrandUpper string
	LegalName  string
	CNPJ       string
	Street     string
	District   string
	City       string
	Phone      string
	Email      string
}

// DefaultIssuer is the institution the service issues declarations for.
var DefaultIssuer = Issuer{
	Brand:      "Liberdade Médica",
	BrandUpper: "LIBERDADE MÉDICA",
	LegalName:  "LIBERDADE MÉDICA LTDA",
	CNPJ:       "40.070.030/0001-99",
	Street:     "R 9, Nº 625, Quadra 27, Lote 73",
	District:   "Setor Central, Goiânia - GO, CEP 74.013-040",
	City:       "Goiânia - GO",
	Phone:      "(62) 98139-6751",
	Email:      "financeiro@liberdademedica.edu.br",
}

// Span is a run of the declaratory paragraph. Bold runs carry the values the
// reader must find at a glance.
type Span struct {
	Text string
	Bold bool
}

// StatementSpans is the declaratory paragraph printed below the installments
// table, split into runs so layouts can emphasise the values.
func StatementSpans(data *domain.DeclarationData, issuer Issuer) []Span {
	return []Span{
		{Text: "Declaramos, para os devidos fins e efeitos legais, que "},
		{Text: data.HolderName, Bold: true},
		{Text: ", CPF "},
		{Text: data.NationalID, Bold: true},
		{Text: ", efetuou pagamentos à "},
		{Text: issuer.Brand + " LTDA", Bold: true},
		{Text: fmt.Sprintf(", CNPJ %s, no ano-calendário de %d, no valor total de ", issuer.CNPJ, data.Year)},
		{Text: data.Total, Bold: true},
		{Text: ", conforme discriminado na tabela acima. " +
			"Este documento é válido como comprovante de despesas dedutíveis na Declaração Anual de Ajuste " +
			"do Imposto de Renda Pessoa Física (IRPF), nos termos da legislação vigente."},
	}
}

// Statement is StatementSpans as plain text.
func Statement(data *domain.DeclarationData, issuer Issuer) string {
	var b strings.Builder
	for _, s := range StatementSpans(data, issuer) {
		b.WriteString(s.Text)
	}
	return b.String()
}
