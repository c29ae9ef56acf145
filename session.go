package authclient

import (
	"context"
	"sync"
)

// SessionSnapshot is the current (credential, identity) pair. The two fields
// are always set and cleared together; a snapshot with only one of them never
// escapes this package.
type SessionSnapshot struct {
	Credential string
	Identity   *Identity
}

// Present reports whether a session exists in the snapshot.
func (s SessionSnapshot) Present() bool {
	return s.Credential != "" && s.Identity != nil
}

// subscriberBuffer bounds how far a subscriber may lag before old snapshots
// are dropped in favor of newer ones.
const subscriberBuffer = 16

// SessionState is the process-wide holder of the current session. It is
// constructed once at application start, seeded from the store, and shared by
// handle with the gateway, guards, and transport. Set and Clear persist
// through the store and then publish the new snapshot to subscribers.
type SessionState struct {
	store  SessionStore
	logger Logger

	mu          sync.RWMutex
	current     SessionSnapshot
	subscribers map[int]chan SessionSnapshot
	nextSubID   int
}

// NewSessionState seeds the state from the store. A store that cannot be
// read, or that holds a credential without a parseable identity, seeds an
// absent session; the client re-authenticates rather than crashing.
func NewSessionState(ctx context.Context, store SessionStore, logger Logger) *SessionState {
	if logger == nil {
		logger = defLogger{}
	}

	state := &SessionState{
		store:       store,
		logger:      logger,
		subscribers: map[int]chan SessionSnapshot{},
	}

	snapshot, err := store.Read(ctx)
	if err != nil {
		logger.Warn("session store read failed, starting unauthenticated", "error", err)
		return state
	}

	if snapshot.Present() {
		state.current = snapshot
		logger.Debug("session rehydrated", "username", snapshot.Identity.Username)
	}

	return state
}

// Current returns the snapshot as of this call. Callers that need an
// authorization decision must go through Gateway.IsAuthenticated, which also
// checks expiry.
func (s *SessionState) Current() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set persists and publishes a new session atomically. If the store write
// fails the in-memory snapshot is left untouched.
func (s *SessionState) Set(ctx context.Context, credential string, identity Identity) error {
	if err := s.store.Write(ctx, credential, identity); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = SessionSnapshot{Credential: credential, Identity: &identity}
	s.publishLocked(s.current)
	return nil
}

// Clear removes the session from the store and memory. Clearing an already
// absent session still emits, so late logout triggers stay observable.
func (s *SessionState) Clear(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = SessionSnapshot{}
	s.publishLocked(s.current)
	return nil
}

// Subscribe returns a channel that immediately carries the current snapshot
// and then every subsequent change in order. The cancel func must be called
// when done; it closes the channel. A subscriber that falls more than
// subscriberBuffer snapshots behind loses the oldest pending ones; the last
// value always wins.
func (s *SessionState) Subscribe() (<-chan SessionSnapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++

	ch := make(chan SessionSnapshot, subscriberBuffer)
	ch <- s.current
	s.subscribers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel
}

func (s *SessionState) publishLocked(snapshot SessionSnapshot) {
	for _, ch := range s.subscribers {
		select {
		case ch <- snapshot:
		default:
			// Full buffer: drop the oldest pending snapshot to make room.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}
