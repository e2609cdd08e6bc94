package voice

import (
	"sync"
	"time"
)

// DefaultSessionTTL is how long an idle conversation is kept before eviction.
const DefaultSessionTTL = 30 * time.Minute

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a conversation.
type Turn struct {
	Role    string
	Content string
}

type session struct {
	createdAt  time.Time
	lastActive time.Time
	turns      []Turn
}

// SessionStore holds in-memory conversation state keyed by session id.
// Idle sessions are evicted lazily on access once their TTL elapses.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]*session
}

// NewSessionStore creates a store with the given idle TTL.
// A non-positive ttl falls back to DefaultSessionTTL.
func NewSessionStore(ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Append records a turn for the session, creating it if absent,
// and returns the full history including the new turn.
func (s *SessionStore) Append(id, role, content string) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.evictExpiredLocked(now)

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{createdAt: now}
		s.sessions[id] = sess
	}
	sess.lastActive = now
	sess.turns = append(sess.turns, Turn{Role: role, Content: content})

	out := make([]Turn, len(sess.turns))
	copy(out, sess.turns)
	return out
}

// History returns a copy of the session's turns, or false if the session
// does not exist or has expired.
func (s *SessionStore) History(id string) ([]Turn, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpiredLocked(s.now())

	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	out := make([]Turn, len(sess.turns))
	copy(out, sess.turns)
	return out, true
}

// Clear removes the session if present.
func (s *SessionStore) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpiredLocked(s.now())
	return len(s.sessions)
}

func (s *SessionStore) evictExpiredLocked(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastActive) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
