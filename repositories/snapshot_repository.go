package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/voleidocaos/caos-server/models"
)

// The whole application state persists as two rows of a key-value table,
// mirroring the way the original front-end kept it in browser storage: one
// master document with every tournament plus the annual ranking, and one
// scalar with the selected date.
const (
	snapshotKey     = "caos_master"
	selectedDateKey = "caos_selected_date"
)

// SnapshotRepository loads and saves the single application snapshot.
// Save always writes the whole document in one transaction, so readers
// never observe a half-updated state across restarts.
type SnapshotRepository interface {
	Load(ctx context.Context) (*models.Snapshot, string, error)
	Save(ctx context.Context, snap *models.Snapshot, selectedDate string) error
}

type sqliteSnapshotRepository struct {
	db *sql.DB
}

func NewSQLiteSnapshotRepository(db *sql.DB) (SnapshotRepository, error) {
	r := &sqliteSnapshotRepository{db: db}
	if err := r.init(); err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot storage: %w", err)
	}
	return r, nil
}

func (r *sqliteSnapshotRepository) init() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	return err
}

func (r *sqliteSnapshotRepository) Load(ctx context.Context) (*models.Snapshot, string, error) {
	snap := models.NewSnapshot()

	raw, err := r.get(ctx, snapshotKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load snapshot: %w", err)
	}
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), snap); err != nil {
			return nil, "", fmt.Errorf("failed to decode snapshot: %w", err)
		}
	}

	// Older snapshots may predate some fields; normalize everything up front
	// so the services can rely on the fixed shapes.
	if snap.Tournaments == nil {
		snap.Tournaments = make(map[string]*models.Tournament)
	}
	for _, t := range snap.Tournaments {
		t.Backfill()
	}
	snap.EnsureSeedPlayers()

	date, err := r.get(ctx, selectedDateKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load selected date: %w", err)
	}

	return snap, date, nil
}

func (r *sqliteSnapshotRepository) Save(ctx context.Context, snap *models.Snapshot, selectedDate string) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}

	upsert := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`

	if _, err := tx.ExecContext(ctx, upsert, snapshotKey, string(raw)); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, selectedDateKey, selectedDate); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to write selected date: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (r *sqliteSnapshotRepository) get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
