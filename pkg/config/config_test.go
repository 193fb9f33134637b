package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/lunchcontrol-api/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, config.StoreMemory, cfg.Store.Driver)
	assert.Equal(t, "admin@demo.com", cfg.Demo.Email)
	assert.Equal(t, "senha123", cfg.Demo.Password)
	assert.Equal(t, 30*time.Second, cfg.Scheduler.AutosaveInterval)
	assert.Equal(t, time.Minute, cfg.Scheduler.OrderSimInterval)
	assert.InDelta(t, 0.1, cfg.Scheduler.OrderSimProbability, 1e-9)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "lunchcontrol:", cfg.Redis.Prefix)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "Redis")
	v.Set("AUTOSAVE_INTERVAL", "10")
	v.Set("ORDER_SIM_INTERVAL", "2m")
	v.Set("HTTP_PORT", "9090")
	v.Set("SEED_DEMO", "false")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, config.StoreRedis, cfg.Store.Driver)
	assert.Equal(t, 10*time.Second, cfg.Scheduler.AutosaveInterval)
	assert.Equal(t, 2*time.Minute, cfg.Scheduler.OrderSimInterval)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.Demo.Seed)
}

func TestFromViper_Invalidos(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "sqlite")
	_, err := config.FromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("APP_ENV", "production")
	_, err = config.FromViper(v)
	assert.Error(t, err, "production exige JWT_SECRET")
}

func TestDSN_EscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "lunch", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/lunch?sslmode=disable", c.DSN())
	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}

func TestLocation(t *testing.T) {
	loc, err := config.AppConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	_, err = config.AppConfig{Timezone: "Marte/Olympus"}.Location()
	assert.Error(t, err)
}
