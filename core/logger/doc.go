// Package logger provides structured logging utilities built on Go's standard
// slog package. It offers a small factory with environment presets and a set of
// pre-built attribute constructors for common logging scenarios.
//
// # Basic Usage
//
//	import "github.com/quillmail/quillmail/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level
//	log := logger.New(logger.WithProduction("myapp"))
//
//	log.Info("registry ready",
//		logger.Component("registry"),
//		logger.Count("tags", 12),
//	)
//
// # Attribute Helpers
//
// Attribute constructors return an empty slog.Attr for nil or empty input, so
// they can be used inline without guarding:
//
//	log.Warn("tag render failed", logger.Error(err), logger.Key("tag", name))
package logger
