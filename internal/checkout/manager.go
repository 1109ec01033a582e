package checkout

import "sync"

// Manager holds at most one live session per principal. Opening a new
// checkout replaces any previous attempt; closing the modal discards it.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Put(principal string, s *Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[principal] = s
}

func (m *Manager) Get(principal string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[principal]
	return s, ok
}

// Discard drops the principal's session. Pending remote calls may still
// finish, but their results have nowhere to land.
func (m *Manager) Discard(principal string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, principal)
}
