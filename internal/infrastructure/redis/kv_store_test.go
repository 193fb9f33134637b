package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/internal/domain/repository"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/redis"
)

func TestKVStore_KeyUsaPrefijo(t *testing.T) {
	s := redis.NewKVStore(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"}), "lunchcontrol:")
	assert.Equal(t, "lunchcontrol:lunchcontrol-data", s.Key(repository.KeyData))
	assert.Equal(t, "lunchcontrol:theme", s.Key(repository.KeyTheme))
}

func TestKVStore_SinPrefijo(t *testing.T) {
	s := redis.NewKVStore(goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:0"}), "")
	assert.Equal(t, "theme", s.Key("theme"))
}

func TestKVStore_ServidorCaidoDevuelveError(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	s := redis.NewKVStore(rdb, "x:")

	_, ok, err := s.Get(context.Background(), "theme")
	require.Error(t, err)
	assert.False(t, ok)
	assert.Error(t, s.WriteBatch(context.Background(), map[string]string{"a": "1"}, []string{"b"}))
}
