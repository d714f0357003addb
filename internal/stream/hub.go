package stream

import (
	"context"
	"sync"
)

// Hub multicasts values to any number of subscribers. A new subscriber
// first receives the most recently published value, then every later value
// in publish order. Publishing never blocks on a slow subscriber: each
// subscriber has its own mailbox drained by a pump goroutine.
type Hub[T any] struct {
	mu        sync.Mutex
	latest    T
	hasLatest bool
	subs      map[*subscriber[T]]struct{}
	closed    bool
}

// subscriber is one registered receiver and its pending values.
type subscriber[T any] struct {
	mu      sync.Mutex
	pending []T
	notify  chan struct{}
	done    chan struct{}
	out     chan T
}

// NewHub creates an empty Hub with no latest value.
func NewHub[T any]() *Hub[T] {
	return &Hub[T]{
		subs: make(map[*subscriber[T]]struct{}),
	}
}

// NewHubWith creates a Hub whose latest value is initial, so the first
// subscriber is served immediately.
func NewHubWith[T any](initial T) *Hub[T] {
	h := NewHub[T]()
	h.latest = initial
	h.hasLatest = true
	return h
}

// Publish records v as the latest value and queues it for every subscriber.
// Publishing to a closed hub is a no-op.
func (h *Hub[T]) Publish(v T) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}

	h.latest = v
	h.hasLatest = true
	for sub := range h.subs {
		sub.push(v)
	}
}

// Latest returns the most recently published value.
func (h *Hub[T]) Latest() (T, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.latest, h.hasLatest
}

// Subscribe registers a subscriber and returns its channel. The channel is
// closed when ctx is cancelled or the hub is closed.
func (h *Hub[T]) Subscribe(ctx context.Context) <-chan T {
	return h.SubscribeFunc(ctx, nil)
}

// SubscribeFunc is Subscribe with a release hook. release, if non-nil, is
// called once when the subscriber is removed, before its channel is closed.
func (h *Hub[T]) SubscribeFunc(ctx context.Context, release func()) <-chan T {
	sub := &subscriber[T]{
		notify: make(chan struct{}, 1),
		done:   make(chan struct{}),
		out:    make(chan T),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		if release != nil {
			release()
		}
		close(sub.out)
		return sub.out
	}
	if h.hasLatest {
		sub.push(h.latest)
	}
	h.subs[sub] = struct{}{}
	h.mu.Unlock()

	go h.pump(ctx, sub, release)

	return sub.out
}

// Subscribers returns the number of active subscribers.
func (h *Hub[T]) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Close releases every subscriber. Their channels are closed once their
// pump goroutines exit.
func (h *Hub[T]) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for sub := range h.subs {
		close(sub.done)
		delete(h.subs, sub)
	}
}

func (h *Hub[T]) remove(sub *subscriber[T]) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, sub)
}

// pump delivers queued values to the subscriber's channel in order.
func (h *Hub[T]) pump(ctx context.Context, sub *subscriber[T], release func()) {
	defer close(sub.out)
	if release != nil {
		defer release()
	}
	defer h.remove(sub)

	for {
		v, ok := sub.pop()
		if !ok {
			select {
			case <-sub.notify:
				continue
			case <-ctx.Done():
				return
			case <-sub.done:
				return
			}
		}

		select {
		case sub.out <- v:
		case <-ctx.Done():
			return
		case <-sub.done:
			return
		}
	}
}

func (s *subscriber[T]) push(v T) {
	s.mu.Lock()
	s.pending = append(s.pending, v)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

func (s *subscriber[T]) pop() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if len(s.pending) == 0 {
		return zero, false
	}
	v := s.pending[0]
	s.pending[0] = zero
	s.pending = s.pending[1:]
	return v, true
}
