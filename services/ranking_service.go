package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/voleidocaos/caos-server/models"
)

// AccessGate supplies the admin capability consumed by the destructive
// ledger operations. The session layer implements it; the ledger only ever
// asks the boolean question.
type AccessGate interface {
	IsPrivileged(ctx context.Context) bool
}

// awardTable maps the number of surviving teams to the points handed out
// per rank. Any other team count awards nothing.
var awardTable = map[int][]int{
	4: {5, 3, 2, 2},
	3: {5, 3, 2},
}

// RankingService is the annual award ledger: it computes the points a
// finished tournament contributes to the annual ranking, applies them on
// finalize and reverses them (estorno) when a finished tournament is reset.
type RankingService interface {
	ComputeAward(ranking map[string]int, t *models.Tournament) map[string]int
	Finalize(ctx context.Context, date string) (*models.Tournament, error)
	ResetRanking(ctx context.Context) error
	ResetTournament(ctx context.Context, date string) (*models.Tournament, error)
}

type rankingService struct {
	store    *Store
	resolver *NameResolver
	gate     AccessGate
	logger   *slog.Logger
}

func NewRankingService(store *Store, resolver *NameResolver, gate AccessGate, logger *slog.Logger) RankingService {
	return &rankingService{store: store, resolver: resolver, gate: gate, logger: logger}
}

// ComputeAward derives the per-player point award from the current
// standings. Team names split on "/" into player tokens, each resolved to
// its canonical spelling; a player appearing twice in a team string gets
// the rank's points twice (additive, never overwritten).
func (s *rankingService) ComputeAward(ranking map[string]int, t *models.Tournament) map[string]int {
	standings := ComputeStandings(t)

	points, ok := awardTable[len(standings)]
	if !ok {
		return map[string]int{}
	}

	award := make(map[string]int)
	for rank, st := range standings {
		for _, token := range strings.Split(st.Team, "/") {
			player := s.resolver.Resolve(ranking, token)
			if player == "" {
				continue
			}
			award[player] += points[rank]
		}
	}
	return award
}

// Finalize closes the tournament out: the award is added entry-by-entry to
// the annual ranking, recorded on the tournament for a later estorno, and
// the finished flag set. One-way; a second call returns ErrAlreadyFinished
// and changes nothing.
func (s *rankingService) Finalize(ctx context.Context, date string) (*models.Tournament, error) {
	var updated *models.Tournament
	err := s.store.Update(ctx, date, func(snap *models.Snapshot, t *models.Tournament) error {
		if t.Finished {
			return ErrAlreadyFinished
		}

		award := s.ComputeAward(snap.AnnualPoints, t)
		for player, pts := range award {
			snap.AnnualPoints[player] += pts
		}
		t.AnnualAward = award
		t.Finished = true

		s.logger.Info("tournament finalized",
			slog.String("date", date),
			slog.Int("players_awarded", len(award)))
		updated = t.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// revert subtracts a finished tournament's award from the annual ranking,
// clamped at zero so earlier manual ranking edits cannot drive a player
// negative. Legacy records without a stored award fall back to recomputing
// it from the tournament's current state. Caller holds the store lock.
func (s *rankingService) revert(snap *models.Snapshot, t *models.Tournament) {
	award := t.AnnualAward
	if award == nil {
		award = s.ComputeAward(snap.AnnualPoints, t)
	}

	for player, pts := range award {
		name := s.resolver.Resolve(snap.AnnualPoints, player)
		if name == "" {
			continue
		}
		remaining := snap.AnnualPoints[name] - pts
		if remaining < 0 {
			remaining = 0
		}
		snap.AnnualPoints[name] = remaining
	}

	snap.EnsureSeedPlayers()
}

// ResetRanking wipes the annual ranking back to the seed players at zero.
// Privileged.
func (s *rankingService) ResetRanking(ctx context.Context) error {
	if !s.gate.IsPrivileged(ctx) {
		return ErrPermissionDenied
	}

	return s.store.UpdateSnapshot(ctx, func(snap *models.Snapshot) error {
		snap.AnnualPoints = make(map[string]int)
		snap.EnsureSeedPlayers()
		s.logger.Info("annual ranking reset")
		return nil
	})
}

// ResetTournament discards the tournament for date and recreates it in the
// default state, reverting its annual award first if it had been finalized.
// Privileged.
func (s *rankingService) ResetTournament(ctx context.Context, date string) (*models.Tournament, error) {
	if !s.gate.IsPrivileged(ctx) {
		return nil, ErrPermissionDenied
	}

	var updated *models.Tournament
	err := s.store.UpdateSnapshot(ctx, func(snap *models.Snapshot) error {
		if existing, ok := snap.Tournaments[date]; ok && existing.Finished {
			s.revert(snap, existing)
		}

		fresh := models.DefaultTournament()
		snap.Tournaments[date] = fresh

		s.logger.Info("tournament reset", slog.String("date", date))
		updated = fresh.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
