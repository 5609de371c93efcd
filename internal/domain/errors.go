package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when the requested resource (e.g. an admin session)
// does not exist or has expired.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails a business
// rule (e.g. blank confirmation text).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNotConfigured is returned when a feature needs a configuration value
// (API key, webhook URL) that was not supplied. There is no fallback.
var ErrNotConfigured = errors.New("not configured")

// ErrInvalidCredential is returned when the admin password does not match.
var ErrInvalidCredential = errors.New("invalid credential")

// ErrNoChanges is returned when an apply is requested but the preview holds
// nothing to write.
var ErrNoChanges = errors.New("no changes to apply")

// ErrExtraction is returned when the language model response cannot be
// turned into structured travel data.
var ErrExtraction = errors.New("extraction failed")

// ErrWriteFailed is returned when the spreadsheet webhook rejects a write,
// either with a non-2xx status or a success:false body.
var ErrWriteFailed = errors.New("write failed")

// ErrConflict is returned when an admin action is not allowed in the
// session's current state, such as a parse while an apply is in flight.
// Handlers should map this to HTTP 409.
var ErrConflict = errors.New("conflict")

// Reason returns the human-readable part of err: whatever follows the
// innermost sentinel in a "pkg.Type.Method: sentinel: reason" chain.
// Errors without a reason after their sentinel are returned whole.
func Reason(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{
		ErrWriteFailed, ErrExtraction, ErrNotConfigured, ErrValidation,
		ErrNoChanges, ErrConflict, ErrNotFound, ErrInvalidCredential,
	} {
		if !errors.Is(err, sentinel) {
			continue
		}
		marker := sentinel.Error() + ": "
		if i := strings.LastIndex(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}
