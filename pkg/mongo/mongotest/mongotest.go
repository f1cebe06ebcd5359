// Package mongotest provides MongoDB fixtures for tests.
package mongotest

import (
	"context"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/event"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	mongopkg "github.com/dmitrymomot/userapi/pkg/mongo"
)

// URIEnv names the variable pointing at a disposable MongoDB deployment.
const URIEnv = "MONGODB_TEST_URI"

// Config returns a connection config for the test deployment and a fresh
// database name. The test is skipped when URIEnv is unset.
func Config(t testing.TB) mongopkg.Config {
	t.Helper()
	uri := os.Getenv(URIEnv)
	if uri == "" {
		t.Skipf("%s is not set, skipping MongoDB integration test", URIEnv)
	}
	return mongopkg.Config{
		URI:            uri,
		Database:       "test_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		ConnectTimeout: 5 * time.Second,
		MaxPoolSize:    10,
		RetryWrites:    true,
		RetryReads:     true,
		RetryAttempts:  1,
	}
}

// Database connects to an isolated database that is dropped when the test ends.
func Database(t testing.TB) *mongo.Database {
	t.Helper()
	cfg := Config(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := mongopkg.NewWithDatabase(ctx, cfg)
	if err != nil {
		t.Fatalf("connect to test mongo: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = db.Client().Disconnect(ctx)
	})
	return db
}

// CommandCounter counts commands the driver started.
type CommandCounter struct {
	n atomic.Int64
}

// Count returns the number of commands started so far.
func (c *CommandCounter) Count() int64 { return c.n.Load() }

// Monitor returns a driver command monitor feeding the counter.
func (c *CommandCounter) Monitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(context.Context, *event.CommandStartedEvent) { c.n.Add(1) },
	}
}

// Unreachable returns a database handle whose deployment does not exist.
// Commands fail after a short server selection timeout. Connecting is lazy,
// so no network traffic happens until a command is issued.
func Unreachable(t testing.TB, counter *CommandCounter) *mongo.Database {
	t.Helper()
	opts := options.Client().
		ApplyURI("mongodb://127.0.0.1:1/?directConnection=true").
		SetServerSelectionTimeout(150 * time.Millisecond).
		SetConnectTimeout(150 * time.Millisecond)
	if counter != nil {
		opts.SetMonitor(counter.Monitor())
	}
	client, err := mongo.Connect(opts)
	if err != nil {
		t.Fatalf("create unreachable client: %v", err)
	}
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })
	return client.Database("unreachable")
}
