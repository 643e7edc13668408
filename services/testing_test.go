package services

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/voleidocaos/caos-server/models"
)

// memRepo is an in-memory SnapshotRepository for service tests.
type memRepo struct {
	snap *models.Snapshot
	date string

	saves int
}

func (m *memRepo) Load(_ context.Context) (*models.Snapshot, string, error) {
	if m.snap == nil {
		return models.NewSnapshot(), m.date, nil
	}
	for _, t := range m.snap.Tournaments {
		t.Backfill()
	}
	m.snap.EnsureSeedPlayers()
	return m.snap, m.date, nil
}

func (m *memRepo) Save(_ context.Context, snap *models.Snapshot, date string) error {
	m.snap = snap
	m.date = date
	m.saves++
	return nil
}

func newTestStore(t *testing.T) (*Store, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	store, err := NewStore(context.Background(), repo)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return store, repo
}

// allowGate grants or denies the admin capability unconditionally.
type allowGate bool

func (g allowGate) IsPrivileged(_ context.Context) bool { return bool(g) }

func testResolver() *NameResolver {
	return NewNameResolver(models.SeedPlayers)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedRand gives draws a deterministic shuffle.
func fixedRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func intPtr(v int) *int { return &v }
