package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/poi5en/termfolio/internal/terminal"
)

// session is one browser terminal. Its mutex serialises requests so the
// interpreter only ever sees one event at a time.
type session struct {
	mu       sync.Mutex
	interp   *terminal.Interpreter
	lastUsed time.Time
}

// SessionStore keeps interpreters keyed by random IDs and expires idle ones.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	factory  func() *terminal.Interpreter
	now      func() time.Time
}

// NewSessionStore creates a store. A non-positive ttl keeps sessions
// until they are deleted.
func NewSessionStore(ttl time.Duration, factory func() *terminal.Interpreter) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		factory:  factory,
		now:      time.Now,
	}
}

// Create starts a new session.
func (s *SessionStore) Create() (string, *session) {
	id := uuid.NewString()
	sess := &session{interp: s.factory()}

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.lastUsed = s.now()
	s.sessions[id] = sess
	return id, sess
}

// Get returns a live session and marks it used.
func (s *SessionStore) Get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if s.expired(sess) {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastUsed = s.now()
	return sess, true
}

// Delete ends a session. It reports whether the session existed.
func (s *SessionStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	return ok
}

// Len returns the number of stored sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many it removed.
func (s *SessionStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// expired must be called with s.mu held.
func (s *SessionStore) expired(sess *session) bool {
	return s.ttl > 0 && s.now().Sub(sess.lastUsed) > s.ttl
}

// Run sweeps every interval until ctx is cancelled.
func (s *SessionStore) Run(ctx context.Context, interval time.Duration, onSweep func(removed int)) {
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := s.Sweep(); n > 0 && onSweep != nil {
				onSweep(n)
			}
		}
	}
}
