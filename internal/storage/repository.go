package storage

import (
	"errors"
	"time"

	"github.com/varmayuvrajwork/rock-paper-scissors/internal/game"
)

// ErrSessionExists is returned by CreateSession when the session ID is
// already taken.
var ErrSessionExists = errors.New("session already exists")

// ErrSessionNotFound is returned when no session matches the given ID.
var ErrSessionNotFound = errors.New("session not found")

// Repository is the keyed session store the serving layer injects into
// handlers and services. Only single-key atomicity is required; the engine
// itself holds no global state.
type Repository interface {
	// CreateSession stores a fresh session; fails with ErrSessionExists
	// when the key is taken.
	CreateSession(s *game.Session) error
	// GetSession returns the session with its move history loaded, or
	// ErrSessionNotFound.
	GetSession(sessionID string) (*game.Session, error)
	UpdateSession(s *game.Session) error
	// DeleteSession removes the session and its move records.
	DeleteSession(sessionID string) error
	// ListSessionIDs returns the IDs of all live sessions.
	ListSessionIDs() ([]string, error)
	CountSessions() (int64, error)
	// FindIdleSessions returns sessions whose last activity is at or
	// before the cutoff. The expiry scanner decides what to do with them.
	FindIdleSessions(cutoff time.Time) ([]game.Session, error)
}
