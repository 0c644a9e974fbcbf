package stream

// Handler receives events emitted on a Stream.
type Handler[T any] func(event T)

// Stream is a minimal synchronous broadcast channel. Emit delivers to every
// current subscriber, in subscription order, before returning. There is no
// buffering: a handler subscribed after an emission never sees it.
//
// Streams follow the library's single-writer execution model and are not
// safe for concurrent use without external locking.
type Stream[T any] struct {
	subs []*Subscription[T]
}

// New creates an empty stream.
func New[T any]() *Stream[T] {
	return &Stream[T]{}
}

// Subscribe registers handler and returns its subscription handle.
func (s *Stream[T]) Subscribe(handler Handler[T]) *Subscription[T] {
	sub := &Subscription[T]{stream: s, handler: handler}
	s.subs = append(s.subs, sub)
	return sub
}

// Emit delivers event synchronously to all current subscribers in
// subscription order. Handlers subscribed during delivery do not receive
// event; handlers cancelled during delivery are skipped.
func (s *Stream[T]) Emit(event T) {
	if len(s.subs) == 0 {
		return
	}
	subs := make([]*Subscription[T], len(s.subs))
	copy(subs, s.subs)
	for _, sub := range subs {
		if sub.cancelled {
			continue
		}
		sub.handler(event)
	}
}

// Len returns the number of live subscriptions.
func (s *Stream[T]) Len() int {
	return len(s.subs)
}

// Subscription is the handle returned by Subscribe. Cancelling it removes
// the handler from the stream.
type Subscription[T any] struct {
	stream    *Stream[T]
	handler   Handler[T]
	cancelled bool
}

// Cancel removes the subscription from its stream. It is idempotent.
func (sub *Subscription[T]) Cancel() {
	if sub.cancelled {
		return
	}
	sub.cancelled = true
	subs := sub.stream.subs
	for i, cur := range subs {
		if cur == sub {
			sub.stream.subs = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Active reports whether the subscription still receives events.
func (sub *Subscription[T]) Active() bool {
	return !sub.cancelled
}
