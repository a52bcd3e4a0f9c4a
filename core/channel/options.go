package channel

import "log/slog"

// Option configures a Channel.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName overrides the channel name used in log records.
// Default is the bare type name of the message type (e.g., "Reading").
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger configures structured logging of subscription changes.
// Publish never logs. By default all records are discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
