package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/lunchcontrol-api/internal/domain/repository"
)

var (
	_ repository.KeyValueStore   = (*KVStore)(nil)
	_ repository.KeyValueBatcher = (*KVStore)(nil)
)

// Querier interfaz común de *pgxpool.Pool y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const (
	getSQL    = `SELECT value FROM kv_store WHERE key = $1`
	upsertSQL = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteSQL = `DELETE FROM kv_store WHERE key = $1`
)

// KVStore implementa repository.KeyValueStore sobre la tabla kv_store.
type KVStore struct {
	pool *pgxpool.Pool
	db   Querier
}

// NewKVStore construye el almacén con el pool.
func NewKVStore(pool *pgxpool.Pool) *KVStore {
	return &KVStore{pool: pool, db: pool}
}

// EnsureSchema crea la tabla si no existe.
func (s *KVStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear kv_store: %w", err)
	}
	return nil
}

// Get devuelve el valor y si existe.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	return get(ctx, s.db, key)
}

// Set inserta o reemplaza el valor.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	return set(ctx, s.db, key, value)
}

// Remove elimina la clave; no falla si no existe.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	return remove(ctx, s.db, key)
}

// WriteBatch aplica todas las escrituras y borrados en una transacción (Commit o Rollback).
func (s *KVStore) WriteBatch(ctx context.Context, sets map[string]string, removes []string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for key, value := range sets {
		if err := set(ctx, tx, key, value); err != nil {
			return err
		}
	}
	for _, key := range removes {
		if err := remove(ctx, tx, key); err != nil {
			return err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func get(ctx context.Context, db Querier, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(ctx, getSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, wrap("get", key, err)
	}
	return value, true, nil
}

func set(ctx context.Context, db Querier, key, value string) error {
	if _, err := db.Exec(ctx, upsertSQL, key, value); err != nil {
		return wrap("set", key, err)
	}
	return nil
}

func remove(ctx context.Context, db Querier, key string) error {
	if _, err := db.Exec(ctx, deleteSQL, key); err != nil {
		return wrap("remove", key, err)
	}
	return nil
}
