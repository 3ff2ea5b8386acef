// Package sheets reads the payments tab of a Google spreadsheet with a
// service account.
package sheets

import (
	"context"
	"fmt"
	"log"
	"strings"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"irpfdecl/internal/config"
	"irpfdecl/internal/domain"
	"irpfdecl/internal/port"
)

type sheetsSource struct {
	cfg config.SheetsConfig
}

// NewSheetsSource creates a Google Sheets backed RowSource. No network call is
// made until FetchRows.
func NewSheetsSource(cfg *config.SheetsConfig) port.RowSource {
	return &sheetsSource{cfg: *cfg}
}

func (s *sheetsSource) Configured() bool {
	return s.cfg.Configured()
}

func (s *sheetsSource) FetchRows(ctx context.Context) (*domain.Table, error) {
	if !s.Configured() {
		return nil, fmt.Errorf("%w: google sheets credentials are not set", domain.ErrConfiguration)
	}

	jwtCfg := &jwt.Config{
		Email:      s.cfg.ServiceAccountEmail,
		PrivateKey: []byte(s.cfg.PrivateKey),
		Scopes:     []string{gsheets.SpreadsheetsReadonlyScope},
		TokenURL:   google.JWTTokenURL,
	}
	srv, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("creating sheets client: %w", err)
	}

	spreadsheet, err := srv.Spreadsheets.Get(s.cfg.SpreadsheetID).
		Fields("properties.title", "sheets.properties").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("loading spreadsheet info: %w", err)
	}

	title, err := pickSheet(spreadsheet.Sheets, s.cfg.SheetGID)
	if err != nil {
		return nil, err
	}

	resp, err := srv.Spreadsheets.Values.Get(s.cfg.SpreadsheetID, quoteSheet(title)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", title, err)
	}

	values := stringValues(resp.Values)
	log.Printf("[sheets] %s | tab: %s | rows: %d", spreadsheet.Properties.Title, title, max(len(values)-1, 0))
	return domain.NewTable(values), nil
}

// pickSheet returns the title of the tab whose sheet id is gid, or the first
// tab when no id matches.
func pickSheet(sheets []*gsheets.Sheet, gid int64) (string, error) {
	var first string
	for _, sh := range sheets {
		if sh == nil || sh.Properties == nil {
			continue
		}
		if sh.Properties.SheetId == gid {
			return sh.Properties.Title, nil
		}
		if first == "" {
			first = sh.Properties.Title
		}
	}
	if first == "" {
		return "", fmt.Errorf("spreadsheet has no tabs")
	}
	log.Printf("[sheets] tab %d not found, using %q", gid, first)
	return first, nil
}

// quoteSheet turns a tab title into an A1 range covering the whole tab.
func quoteSheet(title string) string {
	return "'" + strings.ReplaceAll(title, "'", "''") + "'"
}

func stringValues(raw [][]interface{}) [][]string {
	out := make([][]string, len(raw))
	for i, row := range raw {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			if cell == nil {
				continue
			}
			out[i][j] = fmt.Sprint(cell)
		}
	}
	return out
}
