// Package logger builds *slog.Logger instances with functional options,
// environment presets and context-aware attribute injection.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler from the configured
// Format and wraps it in a handler that runs every registered
// ContextExtractor before a record is written. This is how request ids end up
// on each log line without being passed around explicitly.
//
// # Usage
//
//	cfg, _ := config.Load[logger.Config]()
//	log := logger.New(
//		logger.WithConfig(cfg, "userapi"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "user created", logger.UserID(id))
//
// Attribute helpers (Error, RequestID, Component, ...) keep key names
// consistent. Error and RequestID return an empty Attr for zero input, so
// they can be passed without nil checks.
package logger
