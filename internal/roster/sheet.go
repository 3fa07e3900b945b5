package roster

import (
	"context"
	"fmt"

	"google.golang.org/api/sheets/v4"

	"github.com/sullhouse/sullstice/internal/googleauth"
)

// SheetSource reads roster rows from a Google Sheet.
type SheetSource struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheetSource creates a Sheets-backed roster source.
func NewSheetSource(ctx context.Context, credentialsFile, spreadsheetID, readRange string) (*SheetSource, error) {
	opts, err := googleauth.ClientOptions(ctx, credentialsFile, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, err
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating sheets service: %w", err)
	}

	return &SheetSource{
		service:       service,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

// Rows fetches the configured range and flattens every cell to a string.
func (s *SheetSource) Rows(ctx context.Context) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("reading roster range %q: %w", s.readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}
