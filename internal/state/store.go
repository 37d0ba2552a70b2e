package state

import (
	"context"
	"sync"
)

// Store guards a Session and the cancel function of its in-flight upload.
// The UI dispatches events to it; the upload goroutine only ever sees the
// context it was handed.
type Store struct {
	mu      sync.Mutex
	session Session
	cancel  context.CancelFunc
	running uint64
}

// Dispatch applies ev and carries out cancellation. A start effect is
// returned to the caller, which must call Begin to obtain the request
// context.
func (s *Store) Dispatch(ev Event) Effect {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, eff := s.session.Apply(ev)
	s.session = next

	switch eff.Kind {
	case EffectCancelUpload:
		s.stopLocked()
	case EffectNone:
		// A settled upload releases its context.
		if !next.Busy() && s.cancel != nil {
			s.stopLocked()
		}
	}
	return eff
}

// Begin derives the context for the upload tagged with token. When token is
// already superseded the returned context is cancelled.
func (s *Store) Begin(parent context.Context, token uint64) context.Context {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.session.Busy() || s.session.Token() != token {
		cancel()
		return ctx
	}
	s.stopLocked()
	s.cancel = cancel
	s.running = token
	return ctx
}

// InFlight returns the token of the upload holding a live context, or zero.
func (s *Store) InFlight() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Snapshot returns the current session.
func (s *Store) Snapshot() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Close aborts any in-flight upload.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Store) stopLocked() {
	if s.cancel != nil {
		s.cancel()
	}
	s.cancel = nil
	s.running = 0
}
