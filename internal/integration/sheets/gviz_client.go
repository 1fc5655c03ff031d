package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultGvizBaseURL = "https://docs.google.com/spreadsheets/d"

// GvizClient fetches sheet rows through the public Google Visualization
// endpoint. It needs no credentials, only a link-shared spreadsheet, which
// is how the production sheet is deployed.
type GvizClient struct {
	httpClient    *http.Client
	baseURL       string
	spreadsheetID string
}

// NewGvizClient creates a gviz transport for the given spreadsheet.
func NewGvizClient(spreadsheetID string, timeout time.Duration) *GvizClient {
	return &GvizClient{
		httpClient:    &http.Client{Timeout: timeout},
		baseURL:       defaultGvizBaseURL,
		spreadsheetID: spreadsheetID,
	}
}

// NewGvizClientWithBaseURL is used by tests to point the transport at a
// local server.
func NewGvizClientWithBaseURL(spreadsheetID, baseURL string, timeout time.Duration) *GvizClient {
	c := NewGvizClient(spreadsheetID, timeout)
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// gvizResponse mirrors the subset of the gviz payload we consume.
type gvizResponse struct {
	Table struct {
		Rows []struct {
			C []*struct {
				V any `json:"v"`
			} `json:"c"`
		} `json:"rows"`
	} `json:"table"`
}

// FetchRows returns every row of the named sheet, header included, with
// each cell flattened to its string form.
func (c *GvizClient) FetchRows(ctx context.Context, sheetName string) ([][]string, error) {
	// The timestamp query parameter busts any intermediate cache; the
	// client must always see the sheet's current contents.
	reqURL := fmt.Sprintf("%s/%s/gviz/tq?tqx=out:json&sheet=%s&_=%d",
		c.baseURL, c.spreadsheetID, url.QueryEscape(sheetName), time.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build gviz request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gviz request for sheet %q failed: %w", sheetName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gviz request for sheet %q returned status %d", sheetName, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gviz response: %w", err)
	}

	payload, err := stripGvizWrapper(body)
	if err != nil {
		return nil, fmt.Errorf("unexpected gviz payload for sheet %q: %w", sheetName, err)
	}

	var parsed gvizResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode gviz payload for sheet %q: %w", sheetName, err)
	}

	rows := make([][]string, 0, len(parsed.Table.Rows))
	for _, row := range parsed.Table.Rows {
		cells := make([]string, 0, len(row.C))
		for _, cell := range row.C {
			if cell == nil {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, cellString(cell.V))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// stripGvizWrapper removes the JS callback the endpoint wraps its JSON in:
// "/*O_o*/\ngoogle.visualization.Query.setResponse({...});".
func stripGvizWrapper(body []byte) ([]byte, error) {
	s := string(body)
	start := strings.Index(s, "(")
	end := strings.LastIndex(s, ")")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON body in gviz response")
	}
	return []byte(s[start+1 : end]), nil
}

// cellString flattens a gviz cell value to text. Date cells arrive as
// "Date(Y,M,D)" strings and pass through for the normalizer to handle.
func cellString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
