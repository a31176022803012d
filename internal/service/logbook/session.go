package logbook

import (
	"sort"
	"sync"

	"github.com/ProMBZ/Teacher-Project/internal/domain/models"
	"github.com/ProMBZ/Teacher-Project/internal/repository/memory"
)

// DefaultSessionID is used when a caller does not name a session.
const DefaultSessionID = "default"

// Session owns the state of one interactive logging conversation: the
// record being assembled, the finalized records collected so far, and the
// missing fields reported on the last turn. Turns within a session are
// serialized by mu.
type Session struct {
	mu      sync.Mutex
	Ongoing models.OngoingRecord
	Store   *memory.RecordStore
	Missing []string
}

// NewSession creates a session with an empty ongoing record and store.
func NewSession() *Session {
	return &Session{
		Ongoing: models.NewOngoingRecord(),
		Store:   memory.NewRecordStore(),
	}
}

// ResetOngoing returns the in-progress record to its fully-empty shape.
// Stored records are untouched.
func (s *Session) ResetOngoing() {
	s.Ongoing = models.NewOngoingRecord()
	s.Missing = nil
}

// SessionManager hands out per-conversation sessions keyed by caller id.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionManager creates an empty manager.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

// GetOrCreate returns the session for id, creating it on first use. An
// empty id maps to DefaultSessionID.
func (sm *SessionManager) GetOrCreate(id string) *Session {
	if id == "" {
		id = DefaultSessionID
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sess, exists := sm.sessions[id]; exists {
		return sess
	}
	sess := NewSession()
	sm.sessions[id] = sess
	return sess
}

// IDs lists the known session ids in stable order.
func (sm *SessionManager) IDs() []string {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	ids := make([]string, 0, len(sm.sessions))
	for id := range sm.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
