package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/voleidocaos/caos-server/models"
	"github.com/voleidocaos/caos-server/repositories"
)

// Store owns the in-memory snapshot (every tournament plus the annual
// ranking) and the selected date, and persists the whole document through
// the snapshot repository after every mutation. It is constructed once in
// main and handed to the domain services; there is no ambient global state.
type Store struct {
	mu   sync.Mutex
	repo repositories.SnapshotRepository

	snap         *models.Snapshot
	selectedDate string
}

// NewStore loads the persisted snapshot (or starts from the default one)
// and returns a ready store. The selected date defaults to today when the
// repository has none recorded.
func NewStore(ctx context.Context, repo repositories.SnapshotRepository) (*Store, error) {
	snap, date, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	return &Store{repo: repo, snap: snap, selectedDate: date}, nil
}

// tournament returns the record for date, creating the default one on
// first access. Callers must hold s.mu; creation is persisted by the
// caller's save.
func (s *Store) tournament(date string) *models.Tournament {
	t, ok := s.snap.Tournaments[date]
	if !ok {
		t = models.DefaultTournament()
		s.snap.Tournaments[date] = t
	}
	t.Backfill()
	return t
}

// save persists the whole snapshot. Callers must hold s.mu.
func (s *Store) save(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.snap, s.selectedDate); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

// Update runs fn against the tournament for date under the store lock and
// persists afterwards. fn must validate before mutating so that a returned
// error leaves the state untouched.
func (s *Store) Update(ctx context.Context, date string, fn func(snap *models.Snapshot, t *models.Tournament) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.snap, s.tournament(date)); err != nil {
		return err
	}
	return s.save(ctx)
}

// UpdateSnapshot is Update without a tournament in focus, for operations on
// the annual ranking or the tournament collection itself.
func (s *Store) UpdateSnapshot(ctx context.Context, fn func(snap *models.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.snap); err != nil {
		return err
	}
	return s.save(ctx)
}

// Tournament returns a copy of the record for date, creating and persisting
// the default one on first access. It never fails for a well-formed date.
func (s *Store) Tournament(ctx context.Context, date string) (*models.Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, existed := s.snap.Tournaments[date]
	t := s.tournament(date)
	if !existed {
		if err := s.save(ctx); err != nil {
			return nil, err
		}
	}
	return t.Clone(), nil
}

// SelectedDate returns the active date pointer.
func (s *Store) SelectedDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

// SetSelectedDate moves the active date pointer. It alters no tournament.
func (s *Store) SetSelectedDate(ctx context.Context, date string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selectedDate = date
	return s.save(ctx)
}

// AnnualRanking returns the annual ranking projection ordered by points
// descending, names ascending among equals.
func (s *Store) AnnualRanking() []models.AnnualRankingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]models.AnnualRankingEntry, 0, len(s.snap.AnnualPoints))
	for player, points := range s.snap.AnnualPoints {
		entries = append(entries, models.AnnualRankingEntry{Player: player, Points: points})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Points != entries[j].Points {
			return entries[i].Points > entries[j].Points
		}
		return entries[i].Player < entries[j].Player
	})
	return entries
}
