package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"irpfdecl/internal/domain"
)

func TestStatement(t *testing.T) {
	s := Statement(&domain.DeclarationData{
		HolderName: "Ana Souza",
		NationalID: "123.456.789-01",
		Year:       2025,
		Total:      "R$ 1.500,00",
	}, DefaultIssuer)

	assert.Contains(t, s, "que Ana Souza, CPF 123.456.789-01")
	assert.Contains(t, s, "pagamentos à Liberdade Médica LTDA")
	assert.Contains(t, s, "CNPJ 40.070.030/0001-99")
	assert.Contains(t, s, "ano-calendário de 2025")
	assert.Contains(t, s, "valor total de R$ 1.500,00")
}

func TestStatementSpans_BoldValues(t *testing.T) {
	data := &domain.DeclarationData{
		HolderName: "Ana Souza",
		NationalID: "123.456.789-01",
		Year:       2025,
		Total:      "R$ 1.500,00",
	}

	var bold []string
	for _, s := range StatementSpans(data, DefaultIssuer) {
		if s.Bold {
			bold = append(bold, s.Text)
		}
	}

	assert.Equal(t, []string{"Ana Souza", "123.456.789-01", "Liberdade Médica LTDA", "R$ 1.500,00"}, bold)
}
