// Package logger provides structured logging utilities built on Go's standard slog package.
// It offers logger construction with functional options, environment-driven
// configuration, and attribute helpers for the records emitted by channels.
//
// # Basic Usage
//
// Create loggers using the factory function with various configuration options:
//
//	import "github.com/sahil-kale/voyager-comm-lib/core/logger"
//
//	// Development: text format, debug level, stdout
//	log := logger.New(logger.WithDevelopment("flight-software"))
//
//	// Production: JSON format, info level, stdout
//	log := logger.New(logger.WithProduction("flight-software"))
//
//	// Custom configuration
//	log := logger.New(
//		logger.WithLevel(slog.LevelWarn),
//		logger.WithJSONFormatter(),
//		logger.WithAttr(slog.String("node", "imu")),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Environment Configuration
//
// Config is loaded through the config package (.env file plus environment):
//
//	LOG_LEVEL=debug     # debug, info, warn, error
//	LOG_FORMAT=text     # json or text
//	SERVICE_NAME=imu
//
//	log, err := logger.FromEnv()
//	if err != nil {
//		panic(err)
//	}
//
// # Attribute Helpers
//
// Error helpers return an empty attribute for nil errors, so they can be used
// without nil checks:
//
//	log.Error("Subscriber failed",
//		logger.Error(err),
//		logger.Channel("imu.readings"),
//		logger.Handle(3),
//	)
//
//	log.Debug("Subscriber added",
//		logger.Channel(name),
//		logger.ChannelID(id),
//		logger.Subscribers(n),
//	)
//
// Stack captures the current goroutine's stack trace and is intended for
// panic recovery paths only.
package logger
