// Package events carries core-to-collaborator notifications: log lines,
// connection state and discovered-device snapshots.
//
// A Stream is an observer list. Subscribers register, receive values on a
// buffered channel, and unregister with Close. Publish never blocks: a
// subscriber that falls behind loses values rather than stalling the core.
// A replay Stream additionally remembers the last published value and
// delivers it to every new subscriber immediately.
package events

import (
	"log/slog"
	"sync"
)

const defaultBuffer = 16

// Stream fans values out to subscribers.
type Stream[T any] struct {
	name   string
	replay bool
	buffer int

	mu        sync.Mutex
	subs      map[uint64]chan T
	next      uint64
	latest    T
	hasLatest bool
	closed    bool
}

// NewStream returns a plain broadcast stream. Values published while no one
// is subscribed are lost.
func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{name: name, buffer: defaultBuffer, subs: make(map[uint64]chan T)}
}

// NewReplay returns a latest-value stream. A full subscriber buffer is
// conflated: the oldest pending value is discarded so the newest always
// arrives.
func NewReplay[T any](name string) *Stream[T] {
	s := NewStream[T](name)
	s.replay = true
	return s
}

// Subscription is one registered observer.
type Subscription[T any] struct {
	// C delivers values. It is closed by Close or when the stream closes.
	C <-chan T

	id uint64
	s  *Stream[T]
}

// Subscribe registers a new observer. On a replay stream the last published
// value, if any, is already waiting on C.
func (s *Stream[T]) Subscribe() *Subscription[T] {
	ch := make(chan T, s.buffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return &Subscription[T]{C: ch, s: s}
	}
	id := s.next
	s.next++
	s.subs[id] = ch
	if s.replay && s.hasLatest {
		ch <- s.latest
	}
	return &Subscription[T]{C: ch, id: id, s: s}
}

// Close unregisters the subscription and closes C. Safe to call twice.
func (sub *Subscription[T]) Close() {
	s := sub.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[sub.id]; ok {
		delete(s.subs, sub.id)
		close(ch)
	}
}

// Publish delivers v to every subscriber without blocking.
func (s *Stream[T]) Publish(v T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if s.replay {
		s.latest = v
		s.hasLatest = true
	}
	for id, ch := range s.subs {
		select {
		case ch <- v:
			continue
		default:
		}
		if !s.replay {
			slog.Debug("event subscriber full, dropping", "stream", s.name, "subscriber", id)
			continue
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- v:
		default:
		}
	}
}

// Close closes every subscription. Later Publish calls are ignored and later
// subscriptions receive an already-closed channel.
func (s *Stream[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}
