// Package redis implementa el almacén clave-valor sobre Redis (go-redis v9).
package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jhoicas/lunchcontrol-api/internal/domain/repository"
	"github.com/jhoicas/lunchcontrol-api/pkg/config"
)

var (
	_ repository.KeyValueStore   = (*KVStore)(nil)
	_ repository.KeyValueBatcher = (*KVStore)(nil)
)

// KVStore guarda cada clave como string con el prefijo configurado. Sin TTL.
type KVStore struct {
	rdb    goredis.UniversalClient
	prefix string
}

// NewClient abre el cliente y verifica la conexión con PING.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return rdb, nil
}

// NewKVStore construye el almacén sobre un cliente existente.
func NewKVStore(rdb goredis.UniversalClient, prefix string) *KVStore {
	return &KVStore{rdb: rdb, prefix: prefix}
}

// Key devuelve la clave física en Redis.
func (s *KVStore) Key(key string) string { return s.prefix + key }

// Get devuelve el valor y si existe.
func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, s.Key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return v, true, nil
}

// Set guarda el valor sin expiración.
func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.Key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Remove elimina la clave; no falla si no existe.
func (s *KVStore) Remove(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.Key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// WriteBatch aplica escrituras y borrados en un MULTI/EXEC.
func (s *KVStore) WriteBatch(ctx context.Context, sets map[string]string, removes []string) error {
	_, err := s.rdb.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		for key, value := range sets {
			pipe.Set(ctx, s.Key(key), value, 0)
		}
		if len(removes) > 0 {
			keys := make([]string, 0, len(removes))
			for _, key := range removes {
				keys = append(keys, s.Key(key))
			}
			pipe.Del(ctx, keys...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis batch: %w", err)
	}
	return nil
}
