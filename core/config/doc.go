// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env
// library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/sahil-kale/voyager-comm-lib/core/config"
//
//	type TelemetryConfig struct {
//		Node     string `env:"TELEMETRY_NODE,required"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	func main() {
//		var cfg TelemetryConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process:
//
//	var cfg1 TelemetryConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 TelemetryConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. Reset clears the cache in tests.
package config
