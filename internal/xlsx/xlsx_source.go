// Package xlsx reads payment rows from an .xlsx export of the spreadsheet,
// either from disk or from object storage.
package xlsx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/xuri/excelize/v2"

	"irpfdecl/internal/domain"
	"irpfdecl/internal/port"
)

type fileSource struct {
	path  string
	sheet string
}

// NewFileSource creates a RowSource over a workbook on disk. An empty sheet
// name selects the first sheet.
func NewFileSource(path, sheet string) port.RowSource {
	return &fileSource{path: path, sheet: sheet}
}

func (s *fileSource) Configured() bool {
	return s.path != ""
}

func (s *fileSource) FetchRows(_ context.Context) (*domain.Table, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer func() { _ = f.Close() }()

	return readTable(f, s.sheet)
}

type objectSource struct {
	storage port.ObjectStorage
	bucket  string
	key     string
	sheet   string
}

// NewObjectSource creates a RowSource that downloads the workbook from object
// storage on every fetch.
func NewObjectSource(storage port.ObjectStorage, bucket, key, sheet string) port.RowSource {
	return &objectSource{storage: storage, bucket: bucket, key: key, sheet: sheet}
}

func (s *objectSource) Configured() bool {
	return s.bucket != "" && s.key != ""
}

func (s *objectSource) FetchRows(ctx context.Context) (*domain.Table, error) {
	data, err := s.storage.Download(ctx, s.bucket, s.key)
	if err != nil {
		return nil, err
	}
	log.Printf("[xlsx] downloaded s3://%s/%s (%d bytes)", s.bucket, s.key, len(data))
	return ParseWorkbook(bytes.NewReader(data), s.sheet)
}

// ParseWorkbook reads the named sheet (or the first one) of an .xlsx stream.
func ParseWorkbook(r io.Reader, sheet string) (*domain.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readTable(f, sheet)
}

func readTable(f *excelize.File, sheet string) (*domain.Table, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	log.Printf("[xlsx] sheet %s | rows: %d", sheet, max(len(rows)-1, 0))
	return domain.NewTable(rows), nil
}
