package logger

import (
	"io"
	"log/slog"
	"os"
)

// config collects construction-time settings applied by options.
type config struct {
	output io.Writer
	level  slog.Leveler
	json   bool
	attrs  []slog.Attr
}

// Option configures the logger during construction.
type Option func(*config)

// New creates a slog.Logger configured by the given options.
// Without options it logs text at info level to stdout.
func New(opts ...Option) *slog.Logger {
	cfg := &config{
		output: os.Stdout,
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := &slog.HandlerOptions{Level: cfg.level}

	var handler slog.Handler
	if cfg.json {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(handler)
}

// WithDevelopment configures a text logger at debug level tagged with the app name.
func WithDevelopment(app string) Option {
	return func(c *config) {
		c.json = false
		c.level = slog.LevelDebug
		c.attrs = append(c.attrs, slog.String("app", app))
	}
}

// WithProduction configures a JSON logger at info level tagged with the app name.
func WithProduction(app string) Option {
	return func(c *config) {
		c.json = true
		c.level = slog.LevelInfo
		c.attrs = append(c.attrs, slog.String("app", app))
	}
}

// WithLevel overrides the minimum log level.
func WithLevel(level slog.Leveler) Option {
	return func(c *config) { c.level = level }
}

// WithJSONFormatter switches output to JSON format.
func WithJSONFormatter() Option {
	return func(c *config) { c.json = true }
}

// WithTextFormatter switches output to human-readable text format.
func WithTextFormatter() Option {
	return func(c *config) { c.json = false }
}

// WithOutput redirects log output to the given writer.
func WithOutput(w io.Writer) Option {
	return func(c *config) { c.output = w }
}

// WithAttr attaches a static attribute to every log record.
func WithAttr(attr slog.Attr) Option {
	return func(c *config) { c.attrs = append(c.attrs, attr) }
}
