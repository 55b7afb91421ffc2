package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"taskplanner/internal/core/ports"
)

const createKVTableQuery = `
CREATE TABLE IF NOT EXISTS kv (
  k TEXT PRIMARY KEY,
  v TEXT NOT NULL
);
`

const (
	getKVQuery    = `SELECT v FROM kv WHERE k = ?;`
	putKVQuery    = `INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v;`
	deleteKVQuery = `DELETE FROM kv WHERE k = ?;`
)

// KVStore mirrors application state to a sqlite file as string keys and JSON
// payloads. Last writer wins; there is no transaction across keys.
type KVStore struct {
	db *sqlx.DB
}

var _ ports.KVStore = (*KVStore)(nil)

func NewKVStore(db *sqlx.DB) (*KVStore, error) {
	if _, err := db.Exec(createKVTableQuery); err != nil {
		return nil, err
	}
	return &KVStore{db: db}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, getKVQuery, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *KVStore) Put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, putKVQuery, key, value)
	return err
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, deleteKVQuery, key)
	return err
}
