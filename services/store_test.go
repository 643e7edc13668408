package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voleidocaos/caos-server/models"
)

func TestStore_LazyTournamentCreation(t *testing.T) {
	store, repo := newTestStore(t)

	tour, err := store.Tournament(context.Background(), testDate)
	require.NoError(t, err)
	assert.Len(t, tour.Teams, models.TeamSlots)
	assert.Len(t, tour.Scores, models.MatchCount)
	assert.False(t, tour.Finished)
	assert.Nil(t, tour.AnnualAward)

	// Creation was persisted; a second read does not save again.
	saves := repo.saves
	_, err = store.Tournament(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, saves, repo.saves)
}

func TestStore_SelectedDate(t *testing.T) {
	store, repo := newTestStore(t)

	// Defaults to some date even when the repository had none.
	assert.NotEmpty(t, store.SelectedDate())

	require.NoError(t, store.SetSelectedDate(context.Background(), "2026-01-15"))
	assert.Equal(t, "2026-01-15", store.SelectedDate())
	assert.Equal(t, "2026-01-15", repo.date)
}

func TestStore_TournamentReturnsCopy(t *testing.T) {
	store, _ := newTestStore(t)

	tour, err := store.Tournament(context.Background(), testDate)
	require.NoError(t, err)
	tour.Teams[0] = "tampered"
	tour.PresentPlayers = append(tour.PresentPlayers, "tampered")

	fresh, err := store.Tournament(context.Background(), testDate)
	require.NoError(t, err)
	assert.Empty(t, fresh.Teams[0])
	assert.Empty(t, fresh.PresentPlayers)
}

func TestStore_AnnualRankingSorted(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.UpdateSnapshot(context.Background(), func(snap *models.Snapshot) error {
		snap.AnnualPoints["Lucas"] = 12
		snap.AnnualPoints["Pedro"] = 7
		snap.AnnualPoints["MB"] = 12
		return nil
	})
	require.NoError(t, err)

	ranking := store.AnnualRanking()
	require.Len(t, ranking, len(models.SeedPlayers))

	assert.Equal(t, models.AnnualRankingEntry{Player: "Lucas", Points: 12}, ranking[0])
	assert.Equal(t, models.AnnualRankingEntry{Player: "MB", Points: 12}, ranking[1])
	assert.Equal(t, models.AnnualRankingEntry{Player: "Pedro", Points: 7}, ranking[2])
	for _, entry := range ranking[3:] {
		assert.Zero(t, entry.Points)
	}
}

func TestStore_UpdateErrorLeavesNothingPersisted(t *testing.T) {
	store, repo := newTestStore(t)
	_, err := store.Tournament(context.Background(), testDate)
	require.NoError(t, err)

	saves := repo.saves
	err = store.Update(context.Background(), testDate, func(_ *models.Snapshot, _ *models.Tournament) error {
		return ErrValidationFailed
	})
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, saves, repo.saves)
}
