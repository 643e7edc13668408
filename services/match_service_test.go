package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voleidocaos/caos-server/models"
)

func newTestMatches(t *testing.T) (MatchService, *Store) {
	t.Helper()
	store, _ := newTestStore(t)
	err := store.Update(context.Background(), testDate, func(_ *models.Snapshot, tr *models.Tournament) error {
		copy(tr.Teams, []string{"A/B", "C/D", "E/F", "G/H"})
		return nil
	})
	require.NoError(t, err)
	return NewMatchService(store), store
}

func TestSchedule(t *testing.T) {
	matches, _ := newTestMatches(t)

	schedule := matches.Schedule()
	require.Len(t, schedule, models.MatchCount)
	assert.Equal(t, 1, schedule[0].ID)

	// Double round-robin: every slot pair meets exactly twice.
	meetings := make(map[[2]int]int)
	for _, m := range schedule {
		a, b := m.TeamA, m.TeamB
		if a > b {
			a, b = b, a
		}
		meetings[[2]int{a, b}]++
	}
	require.Len(t, meetings, 6)
	for pair, n := range meetings {
		assert.Equal(t, 2, n, "pair %v", pair)
	}
}

func TestRecordScore(t *testing.T) {
	matches, _ := newTestMatches(t)

	tour, err := matches.RecordScore(context.Background(), testDate, 0, SideA, intPtr(21))
	require.NoError(t, err)
	require.NotNil(t, tour.Scores[0].A)
	assert.Equal(t, 21, *tour.Scores[0].A)
	assert.Nil(t, tour.Scores[0].B)

	// nil clears back to "not entered".
	tour, err = matches.RecordScore(context.Background(), testDate, 0, SideA, nil)
	require.NoError(t, err)
	assert.Nil(t, tour.Scores[0].A)
}

func TestRecordScore_Validation(t *testing.T) {
	matches, _ := newTestMatches(t)

	_, err := matches.RecordScore(context.Background(), testDate, 12, SideA, intPtr(1))
	assert.ErrorIs(t, err, ErrInvalidMatchIndex)
	_, err = matches.RecordScore(context.Background(), testDate, -1, SideA, intPtr(1))
	assert.ErrorIs(t, err, ErrInvalidMatchIndex)
	_, err = matches.RecordScore(context.Background(), testDate, 0, Side("C"), intPtr(1))
	assert.ErrorIs(t, err, ErrInvalidSide)
}

func TestRecordScore_InactiveMatchIgnored(t *testing.T) {
	matches, store := newTestMatches(t)

	err := store.Update(context.Background(), testDate, func(_ *models.Snapshot, tr *models.Tournament) error {
		tr.Teams[3] = models.ByeMarker
		return nil
	})
	require.NoError(t, err)

	// Game 2 is slot 2 vs slot 3; the write is silently dropped.
	tour, err := matches.RecordScore(context.Background(), testDate, 1, SideA, intPtr(21))
	require.NoError(t, err)
	assert.Nil(t, tour.Scores[1].A)

	tour, err = matches.RecordDuration(context.Background(), testDate, 1, "00:10:00")
	require.NoError(t, err)
	assert.Empty(t, tour.Scores[1].Duration)
}

func TestRecordDuration(t *testing.T) {
	matches, _ := newTestMatches(t)

	tour, err := matches.RecordDuration(context.Background(), testDate, 0, "00:17:42")
	require.NoError(t, err)
	assert.Equal(t, "00:17:42", tour.Scores[0].Duration)

	_, err = matches.RecordDuration(context.Background(), testDate, 99, "00:01:00")
	assert.ErrorIs(t, err, ErrInvalidMatchIndex)
}

func TestMatchActive(t *testing.T) {
	tour := models.DefaultTournament()
	copy(tour.Teams, []string{"A/B", "", "E/F", models.ByeMarker})

	for idx, m := range models.MatchSchedule {
		want := m.TeamA != 1 && m.TeamB != 1 && m.TeamA != 3 && m.TeamB != 3
		assert.Equal(t, want, MatchActive(tour, idx), "game %d", m.ID)
	}
}
