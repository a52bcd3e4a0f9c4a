package channel

import (
	"fmt"
	"log/slog"

	"github.com/sahil-kale/voyager-comm-lib/core/logger"
)

// Decorator wraps a callback to add cross-cutting behavior before it is
// subscribed. The channel itself never decorates callbacks.
//
// Example:
//
//	func Counting[T any](n *int) channel.Decorator[T] {
//	    return func(next channel.Callback[T]) channel.Callback[T] {
//	        return func(msg T) {
//	            *n++
//	            next(msg)
//	        }
//	    }
//	}
type Decorator[T any] func(Callback[T]) Callback[T]

// ApplyDecorators wraps cb with decorators. The first decorator in the list
// becomes the outermost wrapper and runs first. Nil decorators are skipped
// and a nil callback stays nil, so SubscribeNoContext still rejects it.
//
// Example:
//
//	cb := channel.ApplyDecorators(onReading,
//	    channel.Recover[Reading](log),
//	    Counting[Reading](&seen),
//	)
//
// Execution order: Recover -> Counting -> onReading
func ApplyDecorators[T any](cb Callback[T], decorators ...Decorator[T]) Callback[T] {
	if cb == nil {
		return nil
	}
	for i := len(decorators) - 1; i >= 0; i-- {
		if decorators[i] != nil {
			cb = decorators[i](cb)
		}
	}
	return cb
}

// Recover returns a Decorator that turns a panic inside the callback into an
// error log record, so subscribers in later slots still receive the message.
func Recover[T any](log *slog.Logger) Decorator[T] {
	if log == nil {
		log = discardLogger
	}
	return func(next Callback[T]) Callback[T] {
		return func(msg T) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("subscriber panicked",
						logger.Error(fmt.Errorf("panic: %v", r)),
						logger.Stack(),
					)
				}
			}()
			next(msg)
		}
	}
}
