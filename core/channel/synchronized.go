package channel

import "sync"

// Synchronized is a Channel guarded by a mutex for use from multiple goroutines.
//
// Every operation holds the lock for its full duration, including delivery
// in Publish, so subscribers run one publish at a time. A subscriber must not
// call back into the same Synchronized channel; doing so deadlocks.
type Synchronized[T any] struct {
	mu sync.Mutex
	ch Channel[T]
}

// NewSynchronized creates an empty mutex-guarded channel.
func NewSynchronized[T any](opts ...Option) *Synchronized[T] {
	s := &Synchronized[T]{}
	s.ch.init(opts)
	return s
}

// Name returns the channel name used in log records.
func (s *Synchronized[T]) Name() string {
	return s.ch.Name()
}

// ID returns the channel instance identifier used in log records.
func (s *Synchronized[T]) ID() string {
	return s.ch.ID()
}

// Subscribe registers a bound subscriber. See Channel.Subscribe.
func (s *Synchronized[T]) Subscribe(b Binding[T]) SubscribeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch.Subscribe(b)
}

// SubscribeNoContext registers an unbound callback. See Channel.SubscribeNoContext.
func (s *Synchronized[T]) SubscribeNoContext(cb Callback[T]) SubscribeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch.SubscribeNoContext(cb)
}

// Unsubscribe releases a slot. See Channel.Unsubscribe.
func (s *Synchronized[T]) Unsubscribe(h Handle) UnsubscribeResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch.Unsubscribe(h)
}

// Publish delivers msg to every subscriber. See Channel.Publish.
func (s *Synchronized[T]) Publish(msg T) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch.Publish(msg)
}

// NumCallbacks returns the number of subscribed slots.
func (s *Synchronized[T]) NumCallbacks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch.NumCallbacks()
}

// Subscribed reports whether h currently identifies a subscribed slot.
func (s *Synchronized[T]) Subscribed(h Handle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch.Subscribed(h)
}

// Reset unsubscribes every slot.
func (s *Synchronized[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ch.Reset()
}
