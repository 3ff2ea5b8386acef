package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"irpfdecl/internal/domain"
)

func readAll(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	r := csv.NewReader(buf)
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	rows := readAll(t, &buf)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Contribuinte", "CPF", "Turma", "Parcela", "Mês de Referência", "Valor Pago"}, rows[0])
}

func TestWriteDeclaration(t *testing.T) {
	data := &domain.DeclarationData{
		HolderName: "Ana Souza",
		NationalID: "123.456.789-01",
		GroupID:    "T1",
		Year:       2025,
		Total:      "R$ 2.500,00",
		Installments: []domain.Installment{
			{Number: "1", MonthLabel: "Janeiro", Amount: "R$ 1.250,00"},
			{Number: "2", MonthLabel: "Fevereiro", Amount: "R$ 1.250,00"},
		},
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteDeclaration(data))
	w.Flush()
	require.NoError(t, w.Error())

	rows := readAll(t, &buf)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Ana Souza", "123.456.789-01", "T1", "1", "Janeiro/2025", "R$ 1.250,00"}, rows[0])
	assert.Equal(t, "Fevereiro/2025", rows[1][4])
	assert.Equal(t, "", rows[2][3])
	assert.Equal(t, "Total 2025", rows[2][4])
	assert.Equal(t, "R$ 2.500,00", rows[2][5])
}

func TestWriteDeclaration_NoInstallments(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteDeclaration(&domain.DeclarationData{Year: 2025, Total: "R$ 0,00"}))
	w.Flush()

	rows := readAll(t, &buf)
	require.Len(t, rows, 1)
	assert.Equal(t, "R$ 0,00", rows[0][5])
}

func TestBuildFilename(t *testing.T) {
	assert.Equal(t, "Declaracao_IRPF_Ana_1700000000000.csv", BuildFilename("Declaracao_IRPF_Ana_1700000000000.pdf"))
}
