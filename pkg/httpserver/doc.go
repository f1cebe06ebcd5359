// Package httpserver runs an http.Handler with configurable timeouts and
// graceful shutdown.
//
// Run binds the listener synchronously, so bind errors are returned
// immediately (joined with ErrStart), then serves until the context is
// cancelled, SIGINT/SIGTERM arrives or Shutdown is called. Shutdown stops
// accepting connections and gives in-flight requests the configured
// timeout to complete.
//
// # Usage
//
//	cfg, _ := config.Load[httpserver.Config]()
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Start and stop hooks (WithStartHook, WithStopHook) run around the
// lifecycle, e.g. to disconnect a database client after the last request.
package httpserver
