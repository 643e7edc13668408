package repositories

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voleidocaos/caos-server/models"
)

func newTestRepo(t *testing.T) (SnapshotRepository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewSQLiteSnapshotRepository(db)
	require.NoError(t, err)
	return repo, db
}

func TestSnapshotRepository_EmptyDatabase(t *testing.T) {
	repo, _ := newTestRepo(t)

	snap, date, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Empty(t, date)
	assert.Empty(t, snap.Tournaments)
	// Seed players exist from the very first load.
	for _, p := range models.SeedPlayers {
		points, ok := snap.AnnualPoints[p]
		assert.True(t, ok, p)
		assert.Zero(t, points)
	}
}

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)

	snap := models.NewSnapshot()
	tour := models.DefaultTournament()
	copy(tour.Teams, []string{"A/B", "C/D", "E/F", "G/H"})
	a, b := 21, 15
	tour.Scores[0] = models.Score{A: &a, B: &b, Duration: "00:12:30"}
	tour.Finished = true
	tour.AnnualAward = map[string]int{"A": 5, "B": 5}
	snap.Tournaments["2026-08-30"] = tour
	snap.AnnualPoints["A"] = 5

	require.NoError(t, repo.Save(context.Background(), snap, "2026-08-30"))

	loaded, date, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-08-30", date)

	got := loaded.Tournaments["2026-08-30"]
	require.NotNil(t, got)
	assert.Equal(t, tour.Teams, got.Teams)
	require.NotNil(t, got.Scores[0].A)
	assert.Equal(t, 21, *got.Scores[0].A)
	assert.Equal(t, "00:12:30", got.Scores[0].Duration)
	assert.True(t, got.Finished)
	assert.Equal(t, map[string]int{"A": 5, "B": 5}, got.AnnualAward)
	assert.Equal(t, 5, loaded.AnnualPoints["A"])
}

func TestSnapshotRepository_SaveOverwrites(t *testing.T) {
	repo, _ := newTestRepo(t)

	snap := models.NewSnapshot()
	require.NoError(t, repo.Save(context.Background(), snap, "2026-01-01"))

	snap.AnnualPoints["Lucas"] = 10
	require.NoError(t, repo.Save(context.Background(), snap, "2026-01-02"))

	loaded, date, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-01-02", date)
	assert.Equal(t, 10, loaded.AnnualPoints["Lucas"])
}

func TestSnapshotRepository_BackfillsLegacySnapshot(t *testing.T) {
	repo, db := newTestRepo(t)

	// A snapshot written before present_players and full score arrays
	// existed: the load normalizes it to the current shape.
	legacy := `{
		"tournaments": {
			"2025-03-10": {"teams": ["A/B", "C/D"], "finished": false}
		},
		"annual_points": {"Lucas": 4}
	}`
	_, err := db.Exec(`INSERT INTO kv (key, value) VALUES ('caos_master', ?)`, legacy)
	require.NoError(t, err)

	snap, _, err := repo.Load(context.Background())
	require.NoError(t, err)

	tour := snap.Tournaments["2025-03-10"]
	require.NotNil(t, tour)
	assert.Len(t, tour.Teams, models.TeamSlots)
	assert.Equal(t, "A/B", tour.Teams[0])
	assert.Empty(t, tour.Teams[2])
	assert.Len(t, tour.Scores, models.MatchCount)
	assert.NotNil(t, tour.PresentPlayers)

	// Existing ranking entries survive, seed players are re-ensured.
	assert.Equal(t, 4, snap.AnnualPoints["Lucas"])
	assert.Contains(t, snap.AnnualPoints, "Marcão")
}
