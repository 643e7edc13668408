package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/voleidocaos/caos-server/models"
)

// RosterService composes the four pair-teams of a day: presence marking,
// the random draw, manual team naming and team clearing.
type RosterService interface {
	SetPresence(ctx context.Context, date, player string, present bool) (*models.Tournament, error)
	SelectAllPresent(ctx context.Context, date string, present bool, count int) (*models.Tournament, error)
	Draw(ctx context.Context, date string) (*models.Tournament, error)
	AssignTeam(ctx context.Context, date string, slot int, name string) (*models.Tournament, error)
	ClearTeams(ctx context.Context, date string) (*models.Tournament, error)
}

type rosterService struct {
	store    *Store
	resolver *NameResolver
	rnd      *rand.Rand
}

// NewRosterService builds a roster service. rnd drives the draw shuffle;
// pass nil for a time-seeded source.
func NewRosterService(store *Store, resolver *NameResolver, rnd *rand.Rand) RosterService {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &rosterService{store: store, resolver: resolver, rnd: rnd}
}

// SetPresence marks or unmarks a player as present for the date. The name
// is resolved to its canonical spelling first, and any spelling variant
// already in the list is removed so one identity never appears twice.
func (s *rosterService) SetPresence(ctx context.Context, date, player string, present bool) (*models.Tournament, error) {
	var updated *models.Tournament
	err := s.store.Update(ctx, date, func(snap *models.Snapshot, t *models.Tournament) error {
		canonical := s.resolver.Resolve(snap.AnnualPoints, player)
		if canonical == "" {
			return ErrEmptyPlayerName
		}
		key := NormalizeName(canonical)

		kept := t.PresentPlayers[:0]
		for _, name := range t.PresentPlayers {
			if NormalizeName(name) != key {
				kept = append(kept, name)
			}
		}
		t.PresentPlayers = kept

		if present {
			t.PresentPlayers = append(t.PresentPlayers, canonical)
		}
		updated = t.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SelectAllPresent replaces the presence list with the first count seed
// players when present is true, and clears it when false. count must be 6
// or 8.
func (s *rosterService) SelectAllPresent(ctx context.Context, date string, present bool, count int) (*models.Tournament, error) {
	if present && count != 6 && count != 8 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPresentTake, count)
	}

	var updated *models.Tournament
	err := s.store.Update(ctx, date, func(snap *models.Snapshot, t *models.Tournament) error {
		if !present {
			t.PresentPlayers = []string{}
		} else {
			selected := make([]string, 0, count)
			for _, name := range models.SeedPlayers[:count] {
				selected = append(selected, s.resolver.Resolve(snap.AnnualPoints, name))
			}
			t.PresentPlayers = selected
		}
		updated = t.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Draw shuffles the distinct present players into pair-teams. Exactly 8
// players fill the four slots; exactly 6 fill three and leave the fourth
// on bye, clearing any score recorded for a match that touches it. Any
// other count fails with the actual count in the error and changes nothing.
// The existing team slots are overwritten unconditionally; asking the user
// first is the front-end's job.
func (s *rosterService) Draw(ctx context.Context, date string) (*models.Tournament, error) {
	var updated *models.Tournament
	err := s.store.Update(ctx, date, func(snap *models.Snapshot, t *models.Tournament) error {
		pool := make([]string, 0, len(t.PresentPlayers))
		seen := make(map[string]bool)
		for _, name := range t.PresentPlayers {
			canonical := s.resolver.Resolve(snap.AnnualPoints, name)
			key := NormalizeName(canonical)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			pool = append(pool, canonical)
		}

		if len(pool) != 6 && len(pool) != 8 {
			return fmt.Errorf("%w: %d marked", ErrInvalidPresentCount, len(pool))
		}

		s.rnd.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})

		for slot := 0; slot < models.TeamSlots; slot++ {
			if 2*slot+1 < len(pool) {
				t.Teams[slot] = pool[2*slot] + "/" + pool[2*slot+1]
			} else {
				t.Teams[slot] = models.ByeMarker
			}
		}

		clearInactiveScores(t)
		t.Finished = false
		updated = t.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AssignTeam sets a team slot to free text, for manual team naming instead
// of drawing. Turning a slot empty (or into the bye marker) clears the
// scores of every match that slot takes part in.
func (s *rosterService) AssignTeam(ctx context.Context, date string, slot int, name string) (*models.Tournament, error) {
	if slot < 0 || slot >= models.TeamSlots {
		return nil, ErrInvalidTeamSlot
	}

	var updated *models.Tournament
	err := s.store.Update(ctx, date, func(_ *models.Snapshot, t *models.Tournament) error {
		t.Teams[slot] = name
		clearInactiveScores(t)
		updated = t.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// ClearTeams empties all four team slots and reopens the tournament. The
// annual ranking is untouched: clearing teams is not a reset and triggers
// no estorno.
func (s *rosterService) ClearTeams(ctx context.Context, date string) (*models.Tournament, error) {
	var updated *models.Tournament
	err := s.store.Update(ctx, date, func(_ *models.Snapshot, t *models.Tournament) error {
		for i := range t.Teams {
			t.Teams[i] = ""
		}
		clearInactiveScores(t)
		t.Finished = false
		updated = t.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// clearInactiveScores enforces the invariant that a match whose team slots
// are not both occupied holds no score or duration.
func clearInactiveScores(t *models.Tournament) {
	for idx := range models.MatchSchedule {
		if !MatchActive(t, idx) {
			t.Scores[idx].Clear()
		}
	}
}
