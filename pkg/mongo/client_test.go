package mongo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/userapi/pkg/config"
	"github.com/dmitrymomot/userapi/pkg/mongo"
	"github.com/dmitrymomot/userapi/pkg/mongo/mongotest"
)

func unreachableConfig() mongo.Config {
	return mongo.Config{
		URI:            "mongodb://127.0.0.1:1/?directConnection=true",
		Database:       "users",
		ConnectTimeout: 100 * time.Millisecond,
		RetryAttempts:  2,
		RetryInterval:  10 * time.Millisecond,
	}
}

func TestConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load[mongo.Config](config.WithEnvironment(map[string]string{
		"MONGODB_URI": "mongodb://localhost:27017",
		"MONGODB_DB":  "users",
	}))
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.URI)
	assert.Equal(t, "users", cfg.Database)
	assert.Equal(t, 10*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, uint64(100), cfg.MaxPoolSize)
	assert.Equal(t, uint64(1), cfg.MinPoolSize)
	assert.True(t, cfg.RetryWrites)
	assert.True(t, cfg.RetryReads)
	assert.Equal(t, 3, cfg.RetryAttempts)
	assert.Equal(t, 2*time.Second, cfg.RetryInterval)
}

func TestConfig_Required(t *testing.T) {
	t.Parallel()

	_, err := config.Load[mongo.Config](config.WithEnvironment(map[string]string{"MONGODB_URI": "mongodb://localhost"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	_, err = config.Load[mongo.Config](config.WithEnvironment(map[string]string{"MONGODB_DB": "users"}))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestNew_Unreachable(t *testing.T) {
	t.Parallel()

	client, err := mongo.New(context.Background(), unreachableConfig())
	require.Error(t, err)
	assert.Nil(t, client)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestNew_InvalidURI(t *testing.T) {
	t.Parallel()

	cfg := unreachableConfig()
	cfg.URI = "postgres://localhost"
	_, err := mongo.New(context.Background(), cfg)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
}

func TestNew_ContextCanceledBetweenAttempts(t *testing.T) {
	t.Parallel()

	cfg := unreachableConfig()
	cfg.RetryAttempts = 5
	cfg.RetryInterval = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := mongo.New(ctx, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, mongo.ErrFailedToConnectToMongo)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestNew_ClientOptionsApplied(t *testing.T) {
	t.Parallel()

	var applied bool
	counter := &mongotest.CommandCounter{}
	_, err := mongo.New(context.Background(), unreachableConfig(), func(o *options.ClientOptions) {
		applied = true
		o.SetMonitor(counter.Monitor()).SetAppName("userapi-test")
	})
	require.Error(t, err)
	assert.True(t, applied)
	assert.Zero(t, counter.Count())
}

func TestNewWithDatabase_EmptyName(t *testing.T) {
	t.Parallel()

	cfg := unreachableConfig()
	cfg.Database = ""
	_, err := mongo.NewWithDatabase(context.Background(), cfg)
	assert.ErrorIs(t, err, mongo.ErrEmptyDatabaseName)
}

func TestHealthcheck_Unreachable(t *testing.T) {
	t.Parallel()

	db := mongotest.Unreachable(t, nil)
	err := mongo.Healthcheck(db)(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, mongo.ErrHealthcheckFailed)
}

func TestHealthcheck_Reachable(t *testing.T) {
	db := mongotest.Database(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	assert.NoError(t, mongo.Healthcheck(db)(ctx))
}
