// Package csvexport writes the installments of a declaration as CSV for the
// finance team's spreadsheets.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"irpfdecl/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Contribuinte",
	"CPF",
	"Turma",
	"Parcela",
	"Mês de Referência",
	"Valor Pago",
}

// Writer wraps csv.Writer for exporting declarations as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes semicolon-separated CSV to w, the
// separator pt-BR Excel expects.
func NewWriter(w io.Writer) *Writer {
	cw := csv.NewWriter(w)
	cw.Comma = ';'
	return &Writer{csv: cw}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteDeclaration writes one row per displayed installment followed by a
// total row.
func (w *Writer) WriteDeclaration(data *domain.DeclarationData) error {
	for _, inst := range data.Installments {
		row := []string{
			data.HolderName,
			data.NationalID,
			data.GroupID,
			inst.Number,
			fmt.Sprintf("%s/%d", inst.MonthLabel, data.Year),
			inst.Amount,
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	total := []string{data.HolderName, data.NationalID, data.GroupID, "", fmt.Sprintf("Total %d", data.Year), data.Total}
	return w.csv.Write(total)
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// BuildFilename returns the CSV name matching a declaration PDF name.
func BuildFilename(pdfFilename string) string {
	return strings.TrimSuffix(pdfFilename, ".pdf") + ".csv"
}
