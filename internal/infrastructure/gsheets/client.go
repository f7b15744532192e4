package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
	"github.com/yourusername/asset-sheet-service/internal/domain/repository"
)

type client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient builds a Google Sheets transport for one spreadsheet, using a
// service-account credentials file. The spreadsheet must be shared with
// the service account as an editor.
func NewClient(ctx context.Context, spreadsheetID, credentialsFile string) (repository.SheetRepository, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}
	return &client{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// ReadAll fetches the whole sheet as formatted text. Transport errors are
// returned as-is; retry policy belongs to the caller.
func (c *client) ReadAll(ctx context.Context, sheet string) (entity.RawGrid, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheet).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	grid := make(entity.RawGrid, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprint(cell))
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

func (c *client) WriteCell(ctx context.Context, sheet string, row, col int, value string) error {
	rangeA1 := fmt.Sprintf("%s!%s%d", sheet, columnLetters(col), row)
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeA1, vr).
		ValueInputOption("RAW").
		Context(ctx).Do()
	return err
}

func (c *client) AppendRow(ctx context.Context, sheet string, values []string) error {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{cells}}
	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, sheet, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	return err
}

// columnLetters converts a 1-based column number to A1 letters.
func columnLetters(col int) string {
	var out []byte
	for col > 0 {
		col--
		out = append([]byte{byte('A' + col%26)}, out...)
		col /= 26
	}
	return string(out)
}
