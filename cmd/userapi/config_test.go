package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userapi/pkg/config"
)

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[Config](config.WithEnvironment(map[string]string{
		"MONGODB_URI": "mongodb://localhost:27017",
		"MONGODB_DB":  "users",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:3000", cfg.Server.Addr())
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "users", cfg.Mongo.Database)
	assert.Equal(t, "development", cfg.Log.Env)
	assert.Equal(t, 2*time.Second, cfg.ReadyTimeout)
	_, ok := cfg.workerThreads()
	assert.False(t, ok)
	assert.False(t, cfg.StrictStatus)
	assert.False(t, cfg.TrustProxy)
}

func TestConfig_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[Config](config.WithEnvironment(map[string]string{
		"HOST":                 "0.0.0.0",
		"PORT":                 "8080",
		"MONGODB_URI":          "mongodb://db:27017",
		"MONGODB_DB":           "prod",
		"WORKER_THREADS":       "4",
		"USERS_STRICT_STATUS":  "true",
		"HEALTH_READY_TIMEOUT": "500ms",
		"LOG_LEVEL":            "warn",
	}))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	n, ok := cfg.workerThreads()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.True(t, cfg.StrictStatus)
	assert.Equal(t, 500*time.Millisecond, cfg.ReadyTimeout)
	assert.NoError(t, cfg.Log.Validate())
}

func TestConfig_FailsFast(t *testing.T) {
	t.Parallel()

	tests := map[string]map[string]string{
		"missing uri":  {"MONGODB_DB": "users"},
		"missing db":   {"MONGODB_URI": "mongodb://localhost"},
		"invalid port": {"MONGODB_URI": "mongodb://localhost", "MONGODB_DB": "users", "PORT": "99999"},
	}
	for name, env := range tests {
		_, err := config.Load[Config](config.WithEnvironment(env))
		assert.ErrorIs(t, err, config.ErrParsingConfig, name)
	}
}

func TestConfig_WorkerThreadsLenient(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want int
		ok   bool
	}{
		"unset":    {"", 0, false},
		"valid":    {"8", 8, true},
		"spaces":   {" 2 ", 2, true},
		"garbage":  {"lots", 0, false},
		"zero":     {"0", 0, false},
		"negative": {"-3", 0, false},
	}
	for name, tt := range tests {
		cfg, err := config.Load[Config](config.WithEnvironment(map[string]string{
			"MONGODB_URI":    "mongodb://localhost:27017",
			"MONGODB_DB":     "users",
			"WORKER_THREADS": tt.raw,
		}))
		require.NoError(t, err, name)
		n, ok := cfg.workerThreads()
		assert.Equal(t, tt.ok, ok, name)
		assert.Equal(t, tt.want, n, name)
	}
}
