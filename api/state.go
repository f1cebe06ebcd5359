package api

import (
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/dmitrymomot/userapi/modules/health"
	"github.com/dmitrymomot/userapi/modules/user"
)

// State is the application state shared by every route. It is built once at
// startup and only read afterwards.
type State struct {
	// DB is the MongoDB database holding the users collection.
	DB *mongo.Database
	// Logger receives access logs and handler failures. Nil uses slog.Default().
	Logger *slog.Logger

	// Users overrides the store built from DB.
	Users user.Store
	// Ping overrides the readiness check built from DB.
	Ping health.PingFunc

	// StrictStatus switches user routes to conventional status codes.
	StrictStatus bool
	// ReadyTimeout bounds the readiness ping. Zero uses health.DefaultReadyTimeout.
	ReadyTimeout time.Duration
	// TrustProxy makes the access log read client IPs from proxy headers.
	TrustProxy bool
}
