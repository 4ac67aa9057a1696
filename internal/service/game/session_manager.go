package game

import (
	"errors"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4-hotseat/pkg/uid"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrTooManySessions = errors.New("too many active sessions")
)

// SessionManager keeps one session per page load, keyed by session id.
type SessionManager struct {
	sessions    map[string]*Session
	maxSessions int
	mu          sync.RWMutex
}

// NewSessionManager caps the number of live sessions at maxSessions; zero
// means no cap.
func NewSessionManager(maxSessions int) *SessionManager {
	return &SessionManager{
		sessions:    make(map[string]*Session),
		maxSessions: maxSessions,
	}
}

func (sm *SessionManager) CreateSession() (*Session, error) {
	id, err := uid.GenerateSessionID()
	if err != nil {
		return nil, err
	}

	session := NewSession(id)

	sm.mu.Lock()
	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		sm.mu.Unlock()
		log.Printf("[SESSION] Refusing new session, %d already live", sm.maxSessions)
		return nil, ErrTooManySessions
	}
	sm.sessions[id] = session
	sm.mu.Unlock()

	log.Printf("[SESSION] Created session %s", id)
	return session, nil
}

func (sm *SessionManager) GetSession(id string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[id]
	return session, exists
}

func (sm *SessionManager) RemoveSession(id string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[id]; !exists {
		return ErrSessionNotFound
	}

	log.Printf("[SESSION] Removing session %s", id)
	delete(sm.sessions, id)
	return nil
}

func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// CleanupOldSessions removes sessions idle for longer than ttl, and page
// loads that never connected a front end within unattachedTTL. It returns
// how many were dropped.
func (sm *SessionManager) CleanupOldSessions(ttl, unattachedTTL time.Duration) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	count := 0
	now := time.Now()

	for id, session := range sm.sessions {
		idle := session.idleSince(now)
		if idle > ttl || (!session.everAttached() && idle > unattachedTTL) {
			delete(sm.sessions, id)
			count++
		}
	}

	if count > 0 {
		log.Printf("[SESSION] Memory cleanup: Removed %d stale game sessions", count)
	}
	return count
}
