package state

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps session IDs to their Session instances. Every logical
// session gets an independently-initialized Session; nothing is ever shared
// between two IDs.
//
// Sessions are created on first use and live for the life of the process.
// There is no expiry; the model is explicitly session-scoped with no
// durability requirements.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[uuid.UUID]*Session)}
}

// GetOrCreate returns the session for id, creating a fresh one on first use.
func (r *Registry) GetOrCreate(id uuid.UUID) *Session {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check under the write lock: another request may have created it.
	if s, ok := r.sessions[id]; ok {
		return s
	}
	s = NewSession()
	r.sessions[id] = s
	return s
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
