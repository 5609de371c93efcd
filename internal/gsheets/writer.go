package gsheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkordes/family-trip/backend/internal/domain"
)

// ActionUpdateSheet is the only action the webhook script understands.
const ActionUpdateSheet = "updateSheet"

// Writer posts changes to the spreadsheet webhook.
type Writer struct {
	client     *http.Client
	webhookURL string
}

// NewWriter constructs a Writer. An empty webhookURL is allowed so the API
// can start without write access; Apply then reports domain.ErrNotConfigured.
func NewWriter(client *http.Client, webhookURL string) *Writer {
	return &Writer{client: client, webhookURL: webhookURL}
}

type updateRequest struct {
	Action  string               `json:"action"`
	Changes []domain.SheetChange `json:"changes"`
}

// Apply sends changes in one request and returns the webhook's verdict.
// A success:false body is returned as-is, not as an error; transport
// failures and non-2xx statuses are errors wrapping domain.ErrWriteFailed.
func (w *Writer) Apply(ctx context.Context, changes []domain.SheetChange) (domain.ApplyResult, error) {
	if w.webhookURL == "" {
		return domain.ApplyResult{}, fmt.Errorf("gsheets.Writer.Apply: %w: SHEETS_WEBHOOK_URL is not set", domain.ErrNotConfigured)
	}

	payload, err := json.Marshal(updateRequest{Action: ActionUpdateSheet, Changes: changes})
	if err != nil {
		return domain.ApplyResult{}, fmt.Errorf("gsheets.Writer.Apply: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return domain.ApplyResult{}, fmt.Errorf("gsheets.Writer.Apply: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return domain.ApplyResult{}, fmt.Errorf("gsheets.Writer.Apply: %w: %v", domain.ErrWriteFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.ApplyResult{}, fmt.Errorf("gsheets.Writer.Apply: %w: HTTP error! status: %d", domain.ErrWriteFailed, resp.StatusCode)
	}

	var result domain.ApplyResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.ApplyResult{}, fmt.Errorf("gsheets.Writer.Apply: %w: decode response: %v", domain.ErrWriteFailed, err)
	}
	return result, nil
}
