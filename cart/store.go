package cart

import "sync"

// Store keeps one cart state per browsing session, in memory only. Carts
// live for the lifetime of the process and are lost on restart, matching
// the session-scoped nature of the storefront cart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]State
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]State)}
}

func (st *Store) Get(sessionID string) State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[sessionID]
}

// Dispatch applies an action to the session's cart and returns the new
// state. Missing sessions start from the empty cart.
func (st *Store) Dispatch(sessionID string, a Action) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	next := Reduce(st.sessions[sessionID], a)
	st.sessions[sessionID] = next
	return next
}

func (st *Store) Clear(sessionID string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionID)
}
