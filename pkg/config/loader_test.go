package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userapi/pkg/config"
)

type listenConfig struct {
	Host string `env:"HOST" envDefault:"127.0.0.1"`
	Port uint16 `env:"PORT" envDefault:"3000"`
}

type storeConfig struct {
	URI      string        `env:"MONGODB_URI,required"`
	Database string        `env:"MONGODB_DB,required"`
	Timeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
}

type serviceConfig struct {
	Listen listenConfig
	Store  storeConfig
}

type fileConfig struct {
	String string   `env:"TEST_FILE_STRING"`
	Int    int      `env:"TEST_FILE_INT"`
	List   []string `env:"TEST_FILE_LIST" envSeparator:","`
	Quoted string   `env:"TEST_FILE_QUOTED"`
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[listenConfig](config.WithEnvironment(map[string]string{}))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, uint16(3000), cfg.Port)
}

func TestLoad_NestedStructs(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[serviceConfig](config.WithEnvironment(map[string]string{
		"HOST":        "0.0.0.0",
		"PORT":        "8081",
		"MONGODB_URI": "mongodb://localhost:27017",
		"MONGODB_DB":  "users",
	}))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Listen.Host)
	assert.Equal(t, uint16(8081), cfg.Listen.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Store.URI)
	assert.Equal(t, "users", cfg.Store.Database)
	assert.Equal(t, 10*time.Second, cfg.Store.Timeout)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		environ map[string]string
	}{
		{"no uri", map[string]string{"MONGODB_DB": "users"}},
		{"no database", map[string]string{"MONGODB_URI": "mongodb://localhost"}},
		{"nothing", map[string]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load[storeConfig](config.WithEnvironment(tt.environ))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrParsingConfig)
		})
	}
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Parallel()

	for _, port := range []string{"http", "-1", "65536", "3000.5"} {
		t.Run(port, func(t *testing.T) {
			t.Parallel()
			_, err := config.Load[listenConfig](config.WithEnvironment(map[string]string{"PORT": port}))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrParsingConfig)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	for _, k := range []string{"TEST_FILE_STRING", "TEST_FILE_INT", "TEST_FILE_LIST", "TEST_FILE_QUOTED"} {
		os.Unsetenv(k)
		t.Cleanup(func() { os.Unsetenv(k) })
	}

	cfg, err := config.Load[fileConfig](config.WithEnvFiles("testdata/.env.test"))
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.String)
	assert.Equal(t, 1234, cfg.Int)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.List)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoad_EnvFileDoesNotOverride(t *testing.T) {
	t.Setenv("TEST_FILE_STRING", "from_process")

	cfg, err := config.Load[fileConfig](config.WithEnvFiles("testdata/.env.test"))
	require.NoError(t, err)
	assert.Equal(t, "from_process", cfg.String)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load[fileConfig](config.WithEnvFiles("testdata/does-not-exist.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
