package domain

import "time"

// AdminState is a step of the admin ingestion workflow.
type AdminState string

const (
	AdminLocked      AdminState = "locked"
	AdminUnlocked    AdminState = "unlocked"
	AdminTextEntered AdminState = "text_entered"
	AdminParsing     AdminState = "parsing"
	AdminParsed      AdminState = "parsed"
	AdminParseFailed AdminState = "parse_failed"
	AdminApplying    AdminState = "applying"
	AdminApplied     AdminState = "applied"
	AdminApplyFailed AdminState = "apply_failed"
)

// AdminSession is the transient state of one unlocked admin. It lives only in
// memory and disappears on close, expiry or restart.
type AdminSession struct {
	ID         string            `json:"id"`
	State      AdminState        `json:"state"`
	Text       string            `json:"text,omitempty"`
	Parsed     *ParsedTravelData `json:"parsedData,omitempty"`
	Preview    *ChangePreview    `json:"preview,omitempty"`
	PreviewCSV map[string]string `json:"previewCsv,omitempty"`
	Result     *ApplyResult      `json:"applyResult,omitempty"`
	Error      string            `json:"error,omitempty"`
	ExpiresAt  time.Time         `json:"expiresAt"`
}
