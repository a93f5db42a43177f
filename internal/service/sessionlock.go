package service

import "sync"

// sessionLocks serializes round resolution per session: a single session's
// state must never be mutated by two concurrent plays. Locks are keyed by
// session ID; entries are dropped when a session ends, and lock re-checks
// the map after acquiring so a waiter holding a forgotten mutex can never
// run alongside the holder of the entry that replaced it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *sessionLocks) lock(sessionID string) *sync.Mutex {
	for {
		l.mu.Lock()
		m, ok := l.locks[sessionID]
		if !ok {
			m = &sync.Mutex{}
			l.locks[sessionID] = m
		}
		l.mu.Unlock()

		m.Lock()
		// The entry may have been forgotten, and possibly recreated, while
		// we waited on the mutex. A mutex no longer registered in the map
		// does not serialize against the current entry's holders, so drop
		// the stale one and retry.
		l.mu.Lock()
		current := l.locks[sessionID]
		l.mu.Unlock()
		if current == m {
			return m
		}
		m.Unlock()
	}
}

func (l *sessionLocks) forget(sessionID string) {
	l.mu.Lock()
	delete(l.locks, sessionID)
	l.mu.Unlock()
}
