package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/userapi/pkg/httpserver"
	"github.com/dmitrymomot/userapi/pkg/logger"
	"github.com/dmitrymomot/userapi/pkg/mongo"
)

// Config is the full process configuration, read from the environment and
// an optional .env file.
type Config struct {
	Server httpserver.Config
	Mongo  mongo.Config
	Log    logger.Config

	WorkerThreads string        `env:"WORKER_THREADS"`
	StrictStatus  bool          `env:"USERS_STRICT_STATUS" envDefault:"false"`
	ReadyTimeout  time.Duration `env:"HEALTH_READY_TIMEOUT" envDefault:"2s"`
	TrustProxy    bool          `env:"HTTP_TRUST_PROXY" envDefault:"false"`
}

// workerThreads returns the GOMAXPROCS override. Unset, unparsable and
// non-positive values leave the runtime default in place.
func (c Config) workerThreads() (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(c.WorkerThreads))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
