package xlsx

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"irpfdecl/internal/domain"
)

// WriteWorkbook writes table as a single-sheet workbook that ParseWorkbook
// reads back unchanged.
func WriteWorkbook(w io.Writer, table *domain.Table, sheet string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if sheet == "" {
		sheet = "Pagamentos"
	}
	if first := f.GetSheetName(0); first != sheet {
		if err := f.SetSheetName(first, sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := make([]interface{}, len(table.Headers))
	for i, h := range table.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, rec := range table.Records {
		row := make([]interface{}, len(table.Headers))
		for j, h := range table.Headers {
			row[j] = rec.Get(h)
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
