package services

import (
	"sort"

	"github.com/voleidocaos/caos-server/models"
)

// ComputeStandings derives the daily classification from a tournament's
// recorded scores. Pure: the argument is never mutated, short-shaped
// records are normalized on a private copy.
//
// A match contributes only when both its team slots are occupied and both
// scores are entered. Equal scores feed the saldo but award no win. Teams
// are ordered by wins, then saldo, both descending; exact ties keep the
// original slot order. Bye and empty slots are excluded from the output.
func ComputeStandings(t *models.Tournament) []models.TeamStanding {
	if len(t.Teams) != models.TeamSlots || len(t.Scores) != models.MatchCount {
		t = t.Clone()
		t.Backfill()
	}

	stats := make([]models.TeamStanding, models.TeamSlots)
	for i := range stats {
		stats[i] = models.TeamStanding{Slot: i, Team: t.Teams[i]}
	}

	for idx, m := range models.MatchSchedule {
		if InactiveTeamName(t.Teams[m.TeamA]) || InactiveTeamName(t.Teams[m.TeamB]) {
			continue
		}
		s := t.Scores[idx]
		if s.A == nil || s.B == nil {
			continue
		}
		a, b := *s.A, *s.B

		stats[m.TeamA].PointsFor += a
		stats[m.TeamA].PointsAgainst += b
		stats[m.TeamB].PointsFor += b
		stats[m.TeamB].PointsAgainst += a

		if a > b {
			stats[m.TeamA].Wins++
		} else if b > a {
			stats[m.TeamB].Wins++
		}
	}

	out := make([]models.TeamStanding, 0, models.TeamSlots)
	for _, st := range stats {
		if InactiveTeamName(st.Team) {
			continue
		}
		st.Saldo = st.PointsFor - st.PointsAgainst
		out = append(out, st)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Wins != out[j].Wins {
			return out[i].Wins > out[j].Wins
		}
		return out[i].Saldo > out[j].Saldo
	})

	return out
}
