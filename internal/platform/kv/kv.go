package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store is a durable key-value store over an embedded SQLite file. Each key
// holds one serialized collection; callers always fetch the whole value and
// overwrite the whole value.
type Store struct {
	DB *sqlx.DB
}

// Open opens (or creates) the store at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("kv.Open: %w", err)
	}
	// single connection: SQLite file, single logical writer
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("kv.Open: ping: %w", err)
	}
	if err := ensureSchema(ctx, db); err != nil {
		return nil, fmt.Errorf("kv.Open: schema: %w", err)
	}
	return &Store{DB: db}, nil
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Load returns the stored value for name, or nil when nothing is stored.
func (s *Store) Load(ctx context.Context, name string) ([]byte, error) {
	const op = "kv.Load"
	var data []byte
	err := s.DB.GetContext(ctx, &data, `SELECT data FROM collections WHERE name = ?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, name, err)
	}
	return data, nil
}

// Save fully overwrites the stored value for name.
func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	const op = "kv.Save"
	_, err := s.DB.ExecContext(ctx, `
    INSERT INTO collections (name, data, updated_at) VALUES (?, ?, ?)
    ON CONFLICT(name) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
  `, name, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %s: %w", op, name, err)
	}
	return nil
}

func ensureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
    CREATE TABLE IF NOT EXISTS collections (
      name TEXT PRIMARY KEY,
      data BLOB NOT NULL,
      updated_at TIMESTAMP NOT NULL
    )
  `)
	return err
}
