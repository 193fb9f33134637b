package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/lunchcontrol-api/internal/application/state"
	"github.com/jhoicas/lunchcontrol-api/internal/domain/repository"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/memory"
	"github.com/jhoicas/lunchcontrol-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/lunchcontrol-api/internal/infrastructure/redis"
	"github.com/jhoicas/lunchcontrol-api/pkg/config"
	"github.com/jhoicas/lunchcontrol-api/pkg/logger"
)

// loadConfig carga la configuración y crea el logger.
func loadConfig() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("cargar configuración: %w", err)
	}
	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	return cfg, log, nil
}

// openKV abre el almacén clave-valor según STORE_DRIVER. closeFn libera las conexiones.
func openKV(ctx context.Context, cfg *config.Config, log *logger.Logger) (kv repository.KeyValueStore, closeFn func(), err error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		store := postgres.NewKVStore(pool)
		if err := store.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("db", cfg.DB.DBName).Msg("almacén listo")
		return store, pool.Close, nil
	case config.StoreRedis:
		rdb, err := infraredis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a Redis: %w", err)
		}
		log.Info().Str("driver", cfg.Store.Driver).Str("addr", cfg.Redis.Addr).Msg("almacén listo")
		return infraredis.NewKVStore(rdb, cfg.Redis.Prefix), func() { _ = rdb.Close() }, nil
	default:
		log.Warn().Str("driver", config.StoreMemory).Msg("almacén en memoria: los datos se pierden al reiniciar")
		return memory.NewKVStore(), func() {}, nil
	}
}

// openStore abre el almacén y carga el estado persistido.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*state.Store, func(), error) {
	kv, closeFn, err := openKV(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	store := state.NewStore(kv)
	if err := store.Load(ctx); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("cargar estado: %w", err)
	}
	return store, closeFn, nil
}
