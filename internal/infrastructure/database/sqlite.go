package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"library-api/internal/infrastructure/memstore"
)

// SQLiteSnapshotter persists memstore snapshots to a single sqlite table, one JSON blob per bucket.
type SQLiteSnapshotter struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (or creates) the database file and its state table.
func OpenSQLite(ctx context.Context, path string) (*SQLiteSnapshotter, error) {
	if path == "" {
		path = "library.db"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps writers serialised and :memory: databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket  TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	log.Info().Str("path", path).Msg("SQLite store opened")
	return &SQLiteSnapshotter{db: db, path: path}, nil
}

func (s *SQLiteSnapshotter) Load(ctx context.Context) (*memstore.Snapshot, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT bucket, payload FROM state`)
	if err != nil {
		return nil, fmt.Errorf("select state: %w", err)
	}
	defer func() { _ = rows.Close() }()

	buckets := make(map[string][]byte)
	for rows.Next() {
		var (
			bucket  string
			payload []byte
		)
		if err := rows.Scan(&bucket, &payload); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		buckets[bucket] = payload
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(buckets) == 0 {
		return nil, nil
	}
	return memstore.SnapshotFromBuckets(buckets)
}

func (s *SQLiteSnapshotter) Save(ctx context.Context, snap *memstore.Snapshot) (retErr error) {
	buckets, err := snap.Buckets()
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	for bucket, data := range buckets {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO state(bucket, payload) VALUES(?, ?) ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
			bucket, data,
		); err != nil {
			return fmt.Errorf("upsert %s: %w", bucket, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteSnapshotter) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLiteSnapshotter) Path() string { return s.path }

func (s *SQLiteSnapshotter) Close() error {
	return s.db.Close()
}
