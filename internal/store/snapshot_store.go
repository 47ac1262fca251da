package store

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"i18n-catalog/internal/parser"
	"i18n-catalog/internal/textutil"
)

// Snapshot is the key set of a catalog file at one point in time.
type Snapshot struct {
	ID         int64     `json:"id"`
	File       string    `json:"file"`
	Digest     string    `json:"digest"`
	KeyCount   int       `json:"key_count"`
	Keys       []string  `json:"keys"`
	RecordedAt time.Time `json:"recorded_at"`
}

// SnapshotStore persists catalog key-set snapshots in PostgreSQL.
type SnapshotStore struct {
	pool *pgxpool.Pool
}

// Connect opens and pings a PostgreSQL pool.
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}
	log.Info().Msg("Connected to PostgreSQL")
	return pool, nil
}

// NewSnapshotStore creates a store on an open pool.
func NewSnapshotStore(pool *pgxpool.Pool) *SnapshotStore {
	return &SnapshotStore{pool: pool}
}

const schema = `
CREATE TABLE IF NOT EXISTS catalog_key_snapshots (
	id          BIGSERIAL PRIMARY KEY,
	file        TEXT        NOT NULL,
	digest      TEXT        NOT NULL,
	key_count   INTEGER     NOT NULL,
	keys        TEXT[]      NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS catalog_key_snapshots_file_idx
	ON catalog_key_snapshots (file, recorded_at DESC);
`

// EnsureSchema creates the snapshot table if it does not exist.
func (s *SnapshotStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create snapshot schema: %w", err)
	}
	return nil
}

// Record stores the key set of file. Files are keyed by absolute path.
func (s *SnapshotStore) Record(ctx context.Context, file string, keys parser.KeySet) (Snapshot, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return Snapshot{}, fmt.Errorf("resolve snapshot path: %w", err)
	}

	sorted := keys.Sorted()
	snap := Snapshot{
		File:     abs,
		Digest:   textutil.Digest(sorted),
		KeyCount: len(sorted),
		Keys:     sorted,
	}

	err = s.pool.QueryRow(ctx,
		`INSERT INTO catalog_key_snapshots (file, digest, key_count, keys)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, recorded_at`,
		snap.File, snap.Digest, snap.KeyCount, snap.Keys,
	).Scan(&snap.ID, &snap.RecordedAt)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert snapshot: %w", err)
	}

	log.Debug().Str("file", abs).Int("keys", snap.KeyCount).Str("digest", snap.Digest[:12]).Msg("Recorded snapshot")
	return snap, nil
}

// List returns up to limit snapshots of file, newest first.
func (s *SnapshotStore) List(ctx context.Context, file string, limit int) ([]Snapshot, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("resolve snapshot path: %w", err)
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx,
		`SELECT id, file, digest, key_count, keys, recorded_at
		 FROM catalog_key_snapshots
		 WHERE file = $1
		 ORDER BY recorded_at DESC, id DESC
		 LIMIT $2`,
		abs, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}

	snaps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Snapshot, error) {
		var snap Snapshot
		err := row.Scan(&snap.ID, &snap.File, &snap.Digest, &snap.KeyCount, &snap.Keys, &snap.RecordedAt)
		return snap, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan snapshots: %w", err)
	}
	return snaps, nil
}

// Latest returns the newest snapshot of file. ok is false if none exist.
func (s *SnapshotStore) Latest(ctx context.Context, file string) (snap Snapshot, ok bool, err error) {
	snaps, err := s.List(ctx, file, 1)
	if err != nil {
		return Snapshot{}, false, err
	}
	if len(snaps) == 0 {
		return Snapshot{}, false, nil
	}
	return snaps[0], true, nil
}
