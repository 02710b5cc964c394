package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"
)

// Manager tracks live sessions keyed by the opaque id echoed in the
// X-Session-ID header. Entries idle past the configured timeout are
// dropped lazily on access so no background sweeper is needed.
type Manager struct {
	mu          sync.Mutex
	sessions    map[string]*entry
	idleTimeout time.Duration
	maxSessions int
	now         func() time.Time
}

type entry struct {
	session  *Session
	lastSeen time.Time
}

// NewManager constructs a session manager.
func NewManager(idleTimeout time.Duration, maxSessions int) *Manager {
	if idleTimeout <= 0 {
		idleTimeout = 8 * time.Hour
	}
	if maxSessions <= 0 {
		maxSessions = 1000
	}
	return &Manager{
		sessions:    make(map[string]*entry),
		idleTimeout: idleTimeout,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// GetOrCreate returns the session for id, creating a fresh one when the id
// is unknown, expired, or empty. The returned session's ID is the key the
// client must echo on subsequent requests.
func (m *Manager) GetOrCreate(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if id != "" {
		if e, ok := m.sessions[id]; ok {
			if now.Sub(e.lastSeen) <= m.idleTimeout {
				e.lastSeen = now
				return e.session
			}
			delete(m.sessions, id)
		}
	}

	m.evictLocked(now)

	sess := New(newSessionID())
	m.sessions[sess.ID] = &entry{session: sess, lastSeen: now}
	return sess
}

// Count reports the number of live sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// evictLocked removes expired entries, then the stalest entry if the table
// is still full. Callers hold the lock.
func (m *Manager) evictLocked(now time.Time) {
	for id, e := range m.sessions {
		if now.Sub(e.lastSeen) > m.idleTimeout {
			delete(m.sessions, id)
		}
	}
	if len(m.sessions) < m.maxSessions {
		return
	}
	var oldestID string
	var oldest time.Time
	for id, e := range m.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID = id
			oldest = e.lastSeen
		}
	}
	if oldestID != "" {
		delete(m.sessions, oldestID)
	}
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}
	return fmt.Sprintf("sess-%d", time.Now().UnixNano())
}
