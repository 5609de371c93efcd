// Package service contains the business logic for the Family Trip API.
// Services orchestrate the spreadsheet, extraction and write clients through
// small interfaces so they can be unit-tested with hand-written mocks.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pkordes/family-trip/backend/internal/domain"
	"github.com/pkordes/family-trip/backend/internal/sheet"
)

// LoadFailedMessage is shown while the trip on display is stale.
const LoadFailedMessage = "Failed to load latest trip data. Showing cached version."

// RowFetcher returns the raw rows of one spreadsheet tab, header included.
// *gsheets.Reader satisfies it.
type RowFetcher interface {
	FetchRows(ctx context.Context, tab string) ([][]string, error)
}

// TripService owns the trip snapshot served to viewers.
type TripService struct {
	rows     RowFetcher
	template domain.Trip
	now      func() time.Time
	log      *slog.Logger

	mu    sync.RWMutex
	state domain.TripState
}

// NewTripService constructs a TripService. fallback is shown until the first
// successful Load and supplies the trip metadata on every load.
// The initial snapshot reports Loading until Load is called.
func NewTripService(rows RowFetcher, fallback domain.Trip, now func() time.Time, log *slog.Logger) *TripService {
	if now == nil {
		now = time.Now
	}
	return &TripService{
		rows:     rows,
		template: fallback,
		now:      now,
		log:      log,
		state:    domain.TripState{Trip: fallback, Loading: true},
	}
}

// Snapshot returns the trip state currently on display.
func (s *TripService) Snapshot() domain.TripState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Load fetches destinations, family members and todos concurrently and
// replaces the snapshot. If any fetch fails the others are cancelled, the
// previous trip stays on display and Error carries LoadFailedMessage.
// Concurrent loads are not coordinated; the last one to finish wins.
func (s *TripService) Load(ctx context.Context) domain.TripState {
	s.mu.Lock()
	s.state.Loading = true
	s.mu.Unlock()

	var (
		destinations []domain.Destination
		family       []domain.FamilyMember
		todos        []domain.TodoItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.rows.FetchRows(gctx, domain.SheetDestinations)
		if err != nil {
			return err
		}
		destinations = sheet.Destinations(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := s.rows.FetchRows(gctx, domain.SheetFamilyMembers)
		if err != nil {
			return err
		}
		family = sheet.FamilyMembers(rows)
		return nil
	})
	g.Go(func() error {
		rows, err := s.rows.FetchRows(gctx, domain.SheetTodos)
		if err != nil {
			return err
		}
		todos = sheet.Todos(rows)
		return nil
	})
	err := g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.log.Warn("trip load failed, keeping previous data", "error", err)
		s.state = domain.TripState{Trip: s.state.Trip, Error: LoadFailedMessage}
		return s.state
	}

	trip := s.template
	trip.Destinations = destinations
	trip.FamilyMembers = family
	trip.Todos = todos
	trip.LastUpdated = s.now()

	s.log.Info("trip loaded",
		"destinations", len(destinations),
		"family_members", len(family),
		"todos", len(todos),
	)
	s.state = domain.TripState{Trip: trip}
	return s.state
}
