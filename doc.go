// Package voyagercomm is a statically-sized, in-process publish/subscribe
// library for typed messages, aimed at resource-constrained and
// safety-relevant software.
//
// # Package Organization
//
//	github.com/sahil-kale/voyager-comm-lib/core/channel - Fixed-capacity typed Channel with bound and unbound subscribers
//	github.com/sahil-kale/voyager-comm-lib/core/logger  - slog construction options and attribute helpers
//	github.com/sahil-kale/voyager-comm-lib/core/config  - Type-safe environment variable loading
//
// # Getting Documentation
//
//	go doc github.com/sahil-kale/voyager-comm-lib/core/channel
//	go doc -all github.com/sahil-kale/voyager-comm-lib/core/channel
package voyagercomm
