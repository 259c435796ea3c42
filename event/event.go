package event

import (
	"io"
	"log/slog"
	"sync"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/footing/oerror"
)

// ListenerID identifies a listener subscribed to a Signal.
type ListenerID uint64

type listener struct {
	id ListenerID
	f  func()
}

// Signal is a notification without payload that any number of independent listeners may subscribe to.
// Listeners are called synchronously, in subscription order, on the goroutine calling Fire. A listener
// that panics is reported and does not prevent the remaining listeners from being called.
type Signal struct {
	name string
	log  *slog.Logger

	mu        sync.Mutex
	nextID    ListenerID
	listeners []listener
}

// NewSignal returns an empty Signal. The name is used when reporting listener panics. A nil logger
// discards log output.
func NewSignal(name string, log *slog.Logger) *Signal {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Signal{name: name, log: log}
}

// Name returns the name of the signal.
func (s *Signal) Name() string {
	return s.name
}

// Subscribe adds f to the listeners of the signal and returns an ID that can be used to unsubscribe it.
func (s *Signal) Subscribe(f func()) ListenerID {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.listeners = append(s.listeners, listener{id: s.nextID, f: f})
	return s.nextID
}

// Unsubscribe removes the listener with the given ID. It returns false if no such listener exists.
func (s *Signal) Unsubscribe(id ListenerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the amount of listeners currently subscribed.
func (s *Signal) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// Clear removes all listeners.
func (s *Signal) Clear() {
	s.mu.Lock()
	s.listeners = nil
	s.mu.Unlock()
}

// Fire calls every listener subscribed at the time of the call. Listeners may subscribe or unsubscribe
// from within a call without affecting the current round.
func (s *Signal) Fire() {
	s.mu.Lock()
	listeners := make([]listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		s.call(l)
	}
}

func (s *Signal) call(l listener) {
	defer func() {
		if err := recover(); err != nil {
			s.log.Error("signal listener panicked", "signal", s.name, "listener", l.id, "panic", err)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("signal", s.name)
			})
			hub.Recover(oerror.New("listener %d of %s panicked: %v", l.id, s.name, err))
		}
	}()
	l.f()
}
