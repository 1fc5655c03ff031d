package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// APIClient fetches sheet rows through the Sheets API v4. It is the
// transport for deployments that provision an API key instead of sharing
// the spreadsheet publicly.
type APIClient struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewAPIClient creates a Sheets API transport for the given spreadsheet.
func NewAPIClient(ctx context.Context, spreadsheetID, apiKey string) (*APIClient, error) {
	svc, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &APIClient{svc: svc, spreadsheetID: spreadsheetID}, nil
}

// FetchRows returns every row of the named sheet, header included, with
// each cell flattened to its formatted string form. Formatted values keep
// currency cells as "$1,234.50" text, matching what the gviz transport and
// the normalizer expect.
func (c *APIClient) FetchRows(ctx context.Context, sheetName string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheetName).
		ValueRenderOption("FORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("sheets api request for sheet %q failed: %w", sheetName, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		cells := make([]string, 0, len(raw))
		for _, cell := range raw {
			cells = append(cells, cellString(cell))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
