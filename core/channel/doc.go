// Package channel provides a statically-sized, in-process publish/subscribe
// primitive for typed messages. It is intended for resource-constrained or
// safety-relevant code: every channel has a fixed table of Capacity subscriber
// slots, and Publish has a bounded cost and performs no heap allocation.
//
// # Core Components
//
// Channel holds the subscriber table for one message type T. Components
// exchange messages through a shared channel without referencing each other.
//
// Callback is an unbound subscriber, a plain function of the message.
//
// Binding is a bound subscriber, a receiver paired with one of its methods.
// Bind builds one from a method expression; BindSubscriber builds one from a
// value implementing Subscriber.
//
// Status, SubscribeResult and UnsubscribeResult form the result vocabulary:
// SUCCESS, FULL or INVALID_PARAMETERS, plus the subscriber count and, for a
// successful subscription, the slot Handle.
//
// Synchronized wraps a Channel with a mutex for multi-goroutine use.
//
// # Basic Usage
//
//	import "github.com/sahil-kale/voyager-comm-lib/core/channel"
//
//	type Reading struct {
//		Sensor uint8
//		Value  int32
//	}
//
//	type Filter struct {
//		last Reading
//	}
//
//	func (f *Filter) OnReading(r Reading) { f.last = r }
//
//	func main() {
//		readings := channel.New[Reading]()
//
//		// Bound subscriber
//		filter := &Filter{}
//		res := readings.Subscribe(channel.Bind(filter, (*Filter).OnReading))
//		if res.Status != channel.StatusSuccess {
//			panic(res.Status.Err())
//		}
//
//		// Unbound subscriber
//		readings.SubscribeNoContext(func(r Reading) {
//			fmt.Println("reading", r.Value)
//		})
//
//		readings.Publish(Reading{Sensor: 1, Value: 0x42})
//
//		// Receivers must be unsubscribed before they are discarded
//		readings.Unsubscribe(res.Handle)
//	}
//
// # Slot Allocation and Delivery Order
//
// A subscription takes the lowest free slot, and Publish walks the slots in
// ascending index order. For a channel that has never seen an
// unsubscription, delivery order equals subscription order. Once a slot is
// released, the next subscriber fills that hole and is delivered at the
// hole's position, not after the older subscribers:
//
//	a := ch.SubscribeNoContext(first)  // handle 0
//	ch.SubscribeNoContext(second)      // handle 1
//	ch.Unsubscribe(a.Handle)
//	ch.SubscribeNoContext(third)       // handle 0, delivered before second
//
// A handle stays valid until Unsubscribe or Reset. After Reset every
// previously issued handle is invalid.
//
// # Error Handling
//
// Operations report failures through their Status; nothing panics:
//
//   - StatusFull: all Capacity slots are taken
//   - StatusInvalidParameters: nil callback, zero Binding, or a handle that
//     is out of range or not subscribed
//
// Status.Err maps a status to ErrFull or ErrInvalidParameters for use with
// errors.Is. Publish always returns StatusSuccess.
//
// A subscriber that panics propagates the panic out of Publish. Subscribers
// that may fail can protect themselves with the Recover decorator:
//
//	cb := channel.ApplyDecorators(onReading, channel.Recover[Reading](log))
//	readings.SubscribeNoContext(cb)
//
// # Receiver Lifetime
//
// A Binding keeps a non-owning reference to its receiver. The channel cannot
// tell that a receiver is no longer in use; callers must unsubscribe a
// receiver before discarding it, or it keeps receiving messages.
//
// # Thread Safety
//
// Channel is single-threaded: Subscribe, Unsubscribe and Publish must not be
// called concurrently on the same instance, and a subscriber that calls back
// into the channel during Publish is not guaranteed a consistent view.
// Use Synchronized when several goroutines share a channel:
//
//	readings := channel.NewSynchronized[Reading]()
//
// Synchronized serializes all operations, including delivery.
//
// # Logging
//
// WithLogger enables structured logging of subscription changes (Debug) and
// rejected requests (Warn). Publish never logs. Channels default to a
// discarding logger.
package channel
