package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client wraps the Google Sheets values API with the few range operations
// the sync needs.
type Client struct {
	svc *sheets.Service
}

func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("can't create sheets service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// ColumnLetter converts a zero-based column index into A1 letters.
func ColumnLetter(index int) string {
	letters := ""
	for index >= 0 {
		letters = string(rune('A'+index%26)) + letters
		index = index/26 - 1
	}
	return letters
}

func (c *Client) ReadRows(ctx context.Context, spreadsheetID, sheetName string, startRow int) ([][]any, error) {
	rangeA1 := fmt.Sprintf("%s!A%d:ZZ", sheetName, startRow)
	resp, err := c.svc.Spreadsheets.Values.Get(spreadsheetID, rangeA1).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("can't read range %s: %w", rangeA1, err)
	}
	return resp.Values, nil
}

func (c *Client) UpdateCell(ctx context.Context, spreadsheetID, sheetName string, row, column int, value any) error {
	rangeA1 := fmt.Sprintf("%s!%s%d", sheetName, ColumnLetter(column), row)
	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, rangeA1, &sheets.ValueRange{
		Values: [][]any{{value}},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("can't update cell %s: %w", rangeA1, err)
	}
	return nil
}

func (c *Client) WriteRow(ctx context.Context, spreadsheetID, sheetName string, row int, values []any) error {
	rangeA1 := fmt.Sprintf("%s!A%d:ZZ%d", sheetName, row, row)
	_, err := c.svc.Spreadsheets.Values.Update(spreadsheetID, rangeA1, &sheets.ValueRange{
		Values: [][]any{values},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("can't write row %d: %w", row, err)
	}
	return nil
}

func (c *Client) ClearRow(ctx context.Context, spreadsheetID, sheetName string, row int) error {
	rangeA1 := fmt.Sprintf("%s!A%d:ZZ%d", sheetName, row, row)
	_, err := c.svc.Spreadsheets.Values.Clear(spreadsheetID, rangeA1, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("can't clear row %d: %w", row, err)
	}
	return nil
}
