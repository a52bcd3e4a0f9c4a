package channel

import (
	"context"
	"log/slog"
	"reflect"

	"github.com/google/uuid"

	"github.com/sahil-kale/voyager-comm-lib/core/logger"
)

// Capacity is the fixed number of subscriber slots in every channel.
// It bounds both memory use and the cost of a single Publish.
const Capacity = 32

var discardLogger = slog.New(slog.DiscardHandler)

// slot is one entry of the subscriber table. A valid slot holds either an
// unbound callback (bound.invoke == nil) or a bound target.
type slot[T any] struct {
	valid bool
	fn    Callback[T]
	bound Binding[T]
}

func (s *slot[T]) deliver(msg T) {
	if s.bound.invoke != nil {
		s.bound.invoke(s.bound.recv, s.bound.method, msg)
		return
	}
	s.fn(msg)
}

// Channel is a fixed-capacity publish/subscribe registry for messages of type T.
//
// Subscribers are delivered synchronously in ascending slot order. A new
// subscription takes the lowest free slot, so after an unsubscription the
// next subscriber fills the hole and is delivered at that position.
//
// Channel is not safe for concurrent use; see Synchronized. A subscriber that
// calls back into the same channel during Publish is not guaranteed a
// consistent view. Channel must not be copied after first use.
//
// The zero value is an empty channel that discards log records.
type Channel[T any] struct {
	noCopy noCopy

	slots [Capacity]slot[T]
	count int

	name   string
	id     string
	logger *slog.Logger
}

// New creates an empty channel.
//
// Example:
//
//	ch := channel.New[Reading](
//	    channel.WithName("imu.readings"),
//	    channel.WithLogger(log),
//	)
func New[T any](opts ...Option) *Channel[T] {
	c := &Channel[T]{}
	c.init(opts)
	return c
}

func (c *Channel[T]) init(opts []Option) {
	o := options{
		name:   typeName[T](),
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(&o)
	}

	c.name = o.name
	c.id = uuid.NewString()
	c.logger = o.logger
}

// Name returns the channel name used in log records.
func (c *Channel[T]) Name() string {
	return c.name
}

// ID returns the channel instance identifier used in log records.
// It is empty for a zero-value channel.
func (c *Channel[T]) ID() string {
	return c.id
}

// Subscribe registers a bound subscriber in the lowest free slot.
// Returns StatusFull when every slot is taken and StatusInvalidParameters
// for a zero Binding.
func (c *Channel[T]) Subscribe(b Binding[T]) SubscribeResult {
	if !b.valid() {
		c.reject("subscribe", StatusInvalidParameters)
		return SubscribeResult{Status: StatusInvalidParameters, NumSubscribers: c.count}
	}
	return c.subscribe(slot[T]{valid: true, bound: b})
}

// SubscribeNoContext registers an unbound callback in the lowest free slot.
// Returns StatusInvalidParameters for a nil callback and StatusFull when
// every slot is taken.
func (c *Channel[T]) SubscribeNoContext(cb Callback[T]) SubscribeResult {
	if cb == nil {
		c.reject("subscribe", StatusInvalidParameters)
		return SubscribeResult{Status: StatusInvalidParameters, NumSubscribers: c.count}
	}
	return c.subscribe(slot[T]{valid: true, fn: cb})
}

func (c *Channel[T]) subscribe(s slot[T]) SubscribeResult {
	idx := c.firstFree()
	if idx < 0 {
		c.reject("subscribe", StatusFull)
		return SubscribeResult{Status: StatusFull, NumSubscribers: c.count}
	}

	c.slots[idx] = s
	c.count++

	if c.enabled(slog.LevelDebug) {
		c.log().LogAttrs(context.Background(), slog.LevelDebug, "subscriber added",
			logger.Channel(c.name),
			logger.ChannelID(c.id),
			logger.Handle(idx),
			logger.Subscribers(c.count),
		)
	}

	return SubscribeResult{Status: StatusSuccess, Handle: Handle(idx), NumSubscribers: c.count}
}

// firstFree returns the lowest invalid slot index, or -1 if the table is full.
func (c *Channel[T]) firstFree() int {
	if c.count >= Capacity {
		return -1
	}
	for i := range c.slots {
		if !c.slots[i].valid {
			return i
		}
	}
	return -1
}

// Unsubscribe releases the slot identified by h. The handle may be handed
// out again by a later subscription.
// Returns StatusInvalidParameters if h is out of range or not subscribed.
func (c *Channel[T]) Unsubscribe(h Handle) UnsubscribeResult {
	if int(h) >= Capacity || !c.slots[h].valid {
		c.reject("unsubscribe", StatusInvalidParameters)
		return UnsubscribeResult{Status: StatusInvalidParameters, NumSubscribers: c.count}
	}

	// Zeroing the slot drops the reference to any bound receiver.
	c.slots[h] = slot[T]{}
	c.count--

	if c.enabled(slog.LevelDebug) {
		c.log().LogAttrs(context.Background(), slog.LevelDebug, "subscriber removed",
			logger.Channel(c.name),
			logger.ChannelID(c.id),
			logger.Handle(int(h)),
			logger.Subscribers(c.count),
		)
	}

	return UnsubscribeResult{Status: StatusSuccess, NumSubscribers: c.count}
}

// Publish delivers msg to every subscribed slot in ascending slot order.
// It always returns StatusSuccess; publishing with no subscribers is a no-op.
// Publish does not allocate, block or log.
func (c *Channel[T]) Publish(msg T) Status {
	for i := range c.slots {
		if s := &c.slots[i]; s.valid {
			s.deliver(msg)
		}
	}
	return StatusSuccess
}

// NumCallbacks returns the number of subscribed slots.
func (c *Channel[T]) NumCallbacks() int {
	return c.count
}

// Subscribed reports whether h currently identifies a subscribed slot.
func (c *Channel[T]) Subscribed(h Handle) bool {
	return int(h) < Capacity && c.slots[h].valid
}

// Reset unsubscribes every slot. All previously issued handles become invalid.
func (c *Channel[T]) Reset() {
	c.slots = [Capacity]slot[T]{}
	c.count = 0

	if c.enabled(slog.LevelDebug) {
		c.log().LogAttrs(context.Background(), slog.LevelDebug, "channel reset",
			logger.Channel(c.name),
			logger.ChannelID(c.id),
		)
	}
}

func (c *Channel[T]) reject(action string, status Status) {
	if !c.enabled(slog.LevelWarn) {
		return
	}
	c.log().LogAttrs(context.Background(), slog.LevelWarn, "channel request rejected",
		logger.Channel(c.name),
		logger.ChannelID(c.id),
		logger.Action(action),
		logger.Result(status.String()),
		logger.Subscribers(c.count),
	)
}

func (c *Channel[T]) log() *slog.Logger {
	if c.logger == nil {
		return discardLogger
	}
	return c.logger
}

func (c *Channel[T]) enabled(level slog.Level) bool {
	return c.log().Enabled(context.Background(), level)
}

// typeName returns the bare type name of T, unwrapping pointers.
// Unnamed types fall back to their type string (e.g., "[]uint8").
func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}

// noCopy may be added to structs which must not be copied after first use.
// It is recognized by the copylocks checker of go vet.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
