package channel

// Callback is an unbound subscriber: a plain function receiving each message.
// Messages are passed by value, so a subscriber cannot alter the publisher's copy.
type Callback[T any] func(msg T)

// Subscriber is implemented by types that receive messages of type T.
type Subscriber[T any] interface {
	Receive(msg T)
}

// Binding is a bound subscriber: a receiver paired with one of its methods.
//
// The channel holds a non-owning reference to the receiver and cannot detect
// a receiver that is no longer in use. Unsubscribe before dropping it.
// The zero Binding is invalid and rejected by Subscribe.
type Binding[T any] struct {
	recv   any
	method any
	invoke func(recv, method any, msg T)
}

// Bind pairs a receiver with a method expression of its type.
// Building a binding does not allocate.
//
// Example:
//
//	type Telemetry struct{ last Reading }
//
//	func (t *Telemetry) OnReading(r Reading) { t.last = r }
//
//	tm := &Telemetry{}
//	res := ch.Subscribe(channel.Bind(tm, (*Telemetry).OnReading))
func Bind[T, R any](recv *R, method func(*R, T)) Binding[T] {
	if recv == nil || method == nil {
		return Binding[T]{}
	}
	return Binding[T]{recv: recv, method: method, invoke: invokeMethod[T, R]}
}

// BindSubscriber binds a receiver implementing Subscriber.
func BindSubscriber[T any](s Subscriber[T]) Binding[T] {
	if s == nil {
		return Binding[T]{}
	}
	return Binding[T]{recv: s, invoke: invokeSubscriber[T]}
}

func invokeMethod[T, R any](recv, method any, msg T) {
	method.(func(*R, T))(recv.(*R), msg)
}

func invokeSubscriber[T any](recv, _ any, msg T) {
	recv.(Subscriber[T]).Receive(msg)
}

func (b Binding[T]) valid() bool {
	return b.invoke != nil
}
