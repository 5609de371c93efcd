// Package gsheets talks to the spreadsheet that backs the itinerary.
// Reader fetches tabs either through the key-authenticated values API or the
// public CSV export; Writer posts row changes to the webhook script that owns
// the sheet.
package gsheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/pkordes/family-trip/backend/internal/sheet"
)

// Default endpoints. Tests point Reader at an httptest server instead.
const (
	DefaultValuesBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	DefaultExportBaseURL = "https://docs.google.com/spreadsheets/d"
)

// Reader fetches raw rows from one spreadsheet.
type Reader struct {
	client        *http.Client
	spreadsheetID string
	apiKey        string
	valuesBaseURL string
	exportBaseURL string
}

// ReaderOption customises a Reader.
type ReaderOption func(*Reader)

// WithBaseURLs overrides the values API and CSV export base URLs.
func WithBaseURLs(values, export string) ReaderOption {
	return func(r *Reader) {
		r.valuesBaseURL = values
		r.exportBaseURL = export
	}
}

// NewReader constructs a Reader. With a non-empty apiKey it uses the values
// API; otherwise it falls back to the unauthenticated CSV export.
func NewReader(client *http.Client, spreadsheetID, apiKey string, opts ...ReaderOption) *Reader {
	r := &Reader{
		client:        client,
		spreadsheetID: spreadsheetID,
		apiKey:        apiKey,
		valuesBaseURL: DefaultValuesBaseURL,
		exportBaseURL: DefaultExportBaseURL,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// valuesResponse is the subset of the values API response we read.
type valuesResponse struct {
	Values [][]string `json:"values"`
}

// FetchRows returns every row of tab, header included, as string cells.
func (r *Reader) FetchRows(ctx context.Context, tab string) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.tabURL(tab), nil)
	if err != nil {
		return nil, fmt.Errorf("gsheets.Reader.FetchRows: %s: %w", tab, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gsheets.Reader.FetchRows: %s: %w", tab, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("gsheets.Reader.FetchRows: %s: unexpected status %d", tab, resp.StatusCode)
	}

	if r.apiKey != "" {
		var body valuesResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("gsheets.Reader.FetchRows: %s: decode: %w", tab, err)
		}
		return body.Values, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gsheets.Reader.FetchRows: %s: read: %w", tab, err)
	}
	return sheet.Tokenize(string(raw)), nil
}

func (r *Reader) tabURL(tab string) string {
	if r.apiKey != "" {
		return fmt.Sprintf("%s/%s/values/%s?key=%s",
			r.valuesBaseURL, url.PathEscape(r.spreadsheetID), url.PathEscape(tab), url.QueryEscape(r.apiKey))
	}
	q := url.Values{}
	q.Set("tqx", "out:csv")
	q.Set("sheet", tab)
	return fmt.Sprintf("%s/%s/gviz/tq?%s", r.exportBaseURL, url.PathEscape(r.spreadsheetID), q.Encode())
}
