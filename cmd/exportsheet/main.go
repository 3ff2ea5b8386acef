// Command exportsheet snapshots the Google Sheets payments tab into an .xlsx
// file that the xlsx and s3 source providers can serve.
// Usage: go run ./cmd/exportsheet [-out data/pagamentos.xlsx]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"irpfdecl/internal/config"
	"irpfdecl/internal/domain"
	"irpfdecl/internal/sheets"
	"irpfdecl/internal/xlsx"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	outPath := flag.String("out", cfg.XLSX.Path, "output .xlsx path")
	sheetName := flag.String("sheet", cfg.XLSX.Sheet, "sheet name in the output workbook")
	flag.Parse()

	if !cfg.Sheets.Configured() {
		return errors.New("google sheets credentials are not configured")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	table, err := sheets.NewSheetsSource(&cfg.Sheets).FetchRows(ctx)
	if err != nil {
		return fmt.Errorf("fetching sheet: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(*outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", *outPath, err)
	}
	if err := writeSnapshot(f, table, *sheetName); err != nil {
		return fmt.Errorf("writing %s: %w", *outPath, err)
	}

	log.Printf("Exported %d rows to %s", len(table.Records), *outPath)
	return nil
}

// writeSnapshot writes table as a workbook and closes w. A failed close is
// reported since the file may be incomplete.
func writeSnapshot(w io.WriteCloser, table *domain.Table, sheet string) error {
	if err := xlsx.WriteWorkbook(w, table, sheet); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
