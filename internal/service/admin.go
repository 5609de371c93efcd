package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/family-trip/backend/internal/auth"
	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/sheet"
)

// TravelParser extracts structured data from a pasted confirmation.
// *llm.Parser satisfies it.
type TravelParser interface {
	Parse(ctx context.Context, text string) (domain.ParsedTravelData, error)
}

// SheetWriter sends a batch of changes to the spreadsheet.
// *gsheets.Writer satisfies it.
type SheetWriter interface {
	Apply(ctx context.Context, changes []domain.SheetChange) (domain.ApplyResult, error)
}

// TripLoader refreshes the trip snapshot. *TripService satisfies it.
type TripLoader interface {
	Load(ctx context.Context) domain.TripState
}

// User-facing messages for rejected admin actions.
const (
	msgBlankText       = "Please enter confirmation text to parse"
	msgNoChanges       = "No changes to apply"
	msgAlreadyApplied  = "Changes have already been applied"
	msgBusy            = "Another operation is still running"
	msgNothingToExport = "Parse a confirmation before exporting"
)

// reloadTimeout bounds the background reload that follows a successful apply.
const reloadTimeout = time.Minute

// transitions lists the states each workflow step may be entered from.
// Closing a session is allowed from anywhere and is not listed.
var transitions = map[domain.AdminState][]domain.AdminState{
	domain.AdminTextEntered: {domain.AdminUnlocked, domain.AdminParsed, domain.AdminParseFailed, domain.AdminApplied, domain.AdminApplyFailed},
	domain.AdminParsing:     {domain.AdminTextEntered},
	domain.AdminParsed:      {domain.AdminParsing},
	domain.AdminParseFailed: {domain.AdminParsing},
	domain.AdminApplying:    {domain.AdminParsed, domain.AdminApplyFailed},
	domain.AdminApplied:     {domain.AdminApplying},
	domain.AdminApplyFailed: {domain.AdminApplying},
}

func canEnter(from, to domain.AdminState) bool {
	for _, s := range transitions[to] {
		if s == from {
			return true
		}
	}
	return false
}

// AdminService runs the password-gated ingestion workflow:
// unlock, paste text, parse to a preview, apply to the spreadsheet.
type AdminService struct {
	password    string
	tokens      *auth.Tokens
	parser      TravelParser
	writer      SheetWriter
	trips       TripLoader
	reloadDelay time.Duration
	log         *slog.Logger

	now       func() time.Time
	afterFunc func(d time.Duration, f func())

	mu       sync.Mutex
	sessions map[string]*domain.AdminSession
}

// AdminOption customises an AdminService.
type AdminOption func(*AdminService)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) AdminOption {
	return func(s *AdminService) { s.now = now }
}

// WithScheduler replaces time.AfterFunc for the post-apply reload.
func WithScheduler(afterFunc func(d time.Duration, f func())) AdminOption {
	return func(s *AdminService) { s.afterFunc = afterFunc }
}

// NewAdminService constructs an AdminService.
func NewAdminService(
	password string,
	tokens *auth.Tokens,
	parser TravelParser,
	writer SheetWriter,
	trips TripLoader,
	reloadDelay time.Duration,
	log *slog.Logger,
	opts ...AdminOption,
) *AdminService {
	s := &AdminService{
		password:    password,
		tokens:      tokens,
		parser:      parser,
		writer:      writer,
		trips:       trips,
		reloadDelay: reloadDelay,
		log:         log,
		now:         time.Now,
		afterFunc:   func(d time.Duration, f func()) { time.AfterFunc(d, f) },
		sessions:    make(map[string]*domain.AdminSession),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Unlock checks password and opens a new session, returning its bearer token.
func (s *AdminService) Unlock(password string) (string, domain.AdminSession, error) {
	if !auth.PasswordMatches(s.password, password) {
		s.log.Warn("admin unlock rejected")
		return "", domain.AdminSession{}, fmt.Errorf("service.AdminService.Unlock: %w", domain.ErrInvalidCredential)
	}

	id := uuid.NewString()
	token, exp, err := s.tokens.Issue(id)
	if err != nil {
		return "", domain.AdminSession{}, fmt.Errorf("service.AdminService.Unlock: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeExpired()
	sess := &domain.AdminSession{ID: id, State: domain.AdminUnlocked, ExpiresAt: exp}
	s.sessions[id] = sess

	s.log.Info("admin session opened", "session", id)
	return token, *sess, nil
}

// Session returns the current view of session id.
func (s *AdminService) Session(id string) (domain.AdminSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, err := s.lookup(id)
	if err != nil {
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Session: %w", err)
	}
	return *sess, nil
}

// Parse extracts travel data from text and builds the change preview.
// Blank text is rejected without touching the session. On failure the
// previous parse result is discarded and the message kept on the session.
func (s *AdminService) Parse(ctx context.Context, id, text string) (domain.AdminSession, error) {
	if strings.TrimSpace(text) == "" {
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Parse: %w: %s", domain.ErrValidation, msgBlankText)
	}

	s.mu.Lock()
	sess, err := s.lookup(id)
	if err != nil {
		s.mu.Unlock()
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Parse: %w", err)
	}
	if !canEnter(sess.State, domain.AdminTextEntered) {
		s.mu.Unlock()
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Parse: %w: %s", domain.ErrConflict, msgBusy)
	}
	sess.Text = text
	sess.State = domain.AdminTextEntered
	// Submitted text is parsed straight away.
	sess.State = domain.AdminParsing
	sess.Error = ""
	sess.Result = nil
	s.mu.Unlock()

	data, parseErr := s.parser.Parse(ctx, text)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[id] != sess {
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Parse: %w", domain.ErrNotFound)
	}

	if parseErr != nil {
		sess.State = domain.AdminParseFailed
		sess.Parsed, sess.Preview, sess.PreviewCSV = nil, nil, nil
		sess.Error = domain.Reason(parseErr)
		s.log.Warn("admin parse failed", "session", id, "error", parseErr)
		return *sess, fmt.Errorf("service.AdminService.Parse: %w", parseErr)
	}

	preview := sheet.GenerateChanges(data)
	sess.State = domain.AdminParsed
	sess.Parsed = &data
	sess.Preview = &preview
	sess.PreviewCSV = sheet.ChangesCSV(preview.Changes)

	s.log.Info("admin parse succeeded", "session", id, "changes", len(preview.Changes))
	return *sess, nil
}

// Apply sends the previewed changes to the spreadsheet. On success a trip
// reload is scheduled after the reload delay. On failure the preview is kept
// so the apply can be retried.
func (s *AdminService) Apply(ctx context.Context, id string) (domain.AdminSession, error) {
	s.mu.Lock()
	sess, err := s.lookup(id)
	if err != nil {
		s.mu.Unlock()
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Apply: %w", err)
	}
	switch {
	case sess.State == domain.AdminParsing || sess.State == domain.AdminApplying:
		s.mu.Unlock()
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Apply: %w: %s", domain.ErrConflict, msgBusy)
	case sess.State == domain.AdminApplied:
		s.mu.Unlock()
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Apply: %w: %s", domain.ErrConflict, msgAlreadyApplied)
	case sess.Preview == nil || len(sess.Preview.Changes) == 0 || !canEnter(sess.State, domain.AdminApplying):
		s.mu.Unlock()
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Apply: %w: %s", domain.ErrNoChanges, msgNoChanges)
	}
	changes := sess.Preview.Changes
	sess.State = domain.AdminApplying
	sess.Error = ""
	sess.Result = nil
	s.mu.Unlock()

	result, applyErr := s.writer.Apply(ctx, changes)
	if applyErr == nil && !result.Success {
		applyErr = fmt.Errorf("%w: %s", domain.ErrWriteFailed, result.Message)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[id] != sess {
		return domain.AdminSession{}, fmt.Errorf("service.AdminService.Apply: %w", domain.ErrNotFound)
	}

	if applyErr != nil {
		sess.State = domain.AdminApplyFailed
		sess.Error = domain.Reason(applyErr)
		if result.Message != "" {
			sess.Result = &result
		}
		s.log.Warn("admin apply failed", "session", id, "error", applyErr)
		return *sess, fmt.Errorf("service.AdminService.Apply: %w", applyErr)
	}

	sess.State = domain.AdminApplied
	sess.Result = &result
	s.log.Info("admin apply succeeded", "session", id, "changes", len(changes), "reload_in", s.reloadDelay)
	s.afterFunc(s.reloadDelay, s.reload)
	return *sess, nil
}

func (s *AdminService) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()
	s.trips.Load(ctx)
}

// Export returns the manual-download CSV files for the session's parsed data.
func (s *AdminService) Export(id string) ([]domain.ExportFile, error) {
	s.mu.Lock()
	sess, err := s.lookup(id)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("service.AdminService.Export: %w", err)
	}
	parsed := sess.Parsed
	s.mu.Unlock()

	if parsed == nil {
		return nil, fmt.Errorf("service.AdminService.Export: %w: %s", domain.ErrNoChanges, msgNothingToExport)
	}
	files, err := sheet.ExportFiles(*parsed, s.now())
	if err != nil {
		return nil, fmt.Errorf("service.AdminService.Export: %w", err)
	}
	return files, nil
}

// ExportFile returns the single export file of the given kind.
func (s *AdminService) ExportFile(id, kind string) (domain.ExportFile, error) {
	if !isExportKind(kind) {
		return domain.ExportFile{}, fmt.Errorf("service.AdminService.ExportFile: %w: unknown export type %q", domain.ErrValidation, kind)
	}
	files, err := s.Export(id)
	if err != nil {
		return domain.ExportFile{}, err
	}
	for _, f := range files {
		if f.Kind == kind {
			return f, nil
		}
	}
	return domain.ExportFile{}, fmt.Errorf("service.AdminService.ExportFile: %w: no %s data", domain.ErrNotFound, kind)
}

func isExportKind(kind string) bool {
	for _, k := range sheet.ExportKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Close ends session id, discarding everything it held.
func (s *AdminService) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.lookup(id); err != nil {
		return fmt.Errorf("service.AdminService.Close: %w", err)
	}
	delete(s.sessions, id)
	s.log.Info("admin session closed", "session", id)
	return nil
}

// lookup returns the live session id. Callers must hold s.mu.
func (s *AdminService) lookup(id string) (*domain.AdminSession, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if !s.now().Before(sess.ExpiresAt) {
		delete(s.sessions, id)
		return nil, domain.ErrNotFound
	}
	return sess, nil
}

// purgeExpired drops sessions past their expiry. Callers must hold s.mu.
func (s *AdminService) purgeExpired() {
	now := s.now()
	for id, sess := range s.sessions {
		if !now.Before(sess.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}
