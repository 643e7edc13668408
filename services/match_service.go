package services

import (
	"context"

	"github.com/voleidocaos/caos-server/models"
)

// Side names one of the two teams of a match.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// MatchActive reports whether schedule entry idx is playable in t: both of
// its team slots must hold a real team, not the bye marker or emptiness.
func MatchActive(t *models.Tournament, idx int) bool {
	m := models.MatchSchedule[idx]
	return !InactiveTeamName(t.Teams[m.TeamA]) && !InactiveTeamName(t.Teams[m.TeamB])
}

// MatchService records scores and durations against the fixed schedule.
type MatchService interface {
	Schedule() []models.MatchSlot
	RecordScore(ctx context.Context, date string, matchIdx int, side Side, value *int) (*models.Tournament, error)
	RecordDuration(ctx context.Context, date string, matchIdx int, duration string) (*models.Tournament, error)
}

type matchService struct {
	store *Store
}

func NewMatchService(store *Store) MatchService {
	return &matchService{store: store}
}

// Schedule exposes the fixed 12-game schedule as a read-only projection.
func (s *matchService) Schedule() []models.MatchSlot {
	schedule := make([]models.MatchSlot, len(models.MatchSchedule))
	copy(schedule, models.MatchSchedule[:])
	return schedule
}

// RecordScore stores value (nil clears) for one side of a match. Writes to
// an inactive match are silently ignored: the front-end disables those
// inputs, and a stale client racing a team change must not resurrect a
// cleared score.
func (s *matchService) RecordScore(ctx context.Context, date string, matchIdx int, side Side, value *int) (*models.Tournament, error) {
	if matchIdx < 0 || matchIdx >= models.MatchCount {
		return nil, ErrInvalidMatchIndex
	}
	if side != SideA && side != SideB {
		return nil, ErrInvalidSide
	}

	var updated *models.Tournament
	err := s.store.Update(ctx, date, func(_ *models.Snapshot, t *models.Tournament) error {
		if MatchActive(t, matchIdx) {
			if side == SideA {
				t.Scores[matchIdx].A = value
			} else {
				t.Scores[matchIdx].B = value
			}
		}
		updated = t.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RecordDuration stores the stopwatch reading verbatim; the core treats the
// text as opaque. No-op on inactive matches, same as RecordScore.
func (s *matchService) RecordDuration(ctx context.Context, date string, matchIdx int, duration string) (*models.Tournament, error) {
	if matchIdx < 0 || matchIdx >= models.MatchCount {
		return nil, ErrInvalidMatchIndex
	}

	var updated *models.Tournament
	err := s.store.Update(ctx, date, func(_ *models.Snapshot, t *models.Tournament) error {
		if MatchActive(t, matchIdx) {
			t.Scores[matchIdx].Duration = duration
		}
		updated = t.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
