// Package session tracks login sessions that expire after a fixed TTL.
package session

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ajitpratap0/patternkit/internal/cache"
	"github.com/ajitpratap0/patternkit/internal/metrics"
)

// ErrNoSession is returned for unknown or expired session IDs.
var ErrNoSession = errors.New("session not found or expired")

// Manager issues session IDs and maps them to user IDs.
type Manager struct {
	ttl      time.Duration
	sessions *cache.Manager[int64]
	logger   *slog.Logger
}

// NewManager creates a manager whose sessions live for ttl.
func NewManager(ttl, cleanupInterval time.Duration, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		ttl:      ttl,
		sessions: cache.New[int64]("sessions", ttl, cleanupInterval, logger),
		logger:   logger,
	}
}

// Create starts a session for userID and returns its ID.
func (m *Manager) Create(userID int64) string {
	id := uuid.New().String()
	m.sessions.Set(id, userID, m.ttl)
	metrics.Inc(metrics.SessionsCreated)
	m.logger.Debug("session created", "session_id", id, "user_id", userID)
	return id
}

// UserID returns the user that owns sessionID.
func (m *Manager) UserID(sessionID string) (int64, error) {
	userID, ok := m.sessions.Get(sessionID)
	if !ok {
		return 0, ErrNoSession
	}
	return userID, nil
}

// Touch extends sessionID by a full TTL.
func (m *Manager) Touch(sessionID string) error {
	if _, ok := m.sessions.GetWithRefresh(sessionID, m.ttl); !ok {
		return ErrNoSession
	}
	return nil
}

// Valid reports whether sessionID exists and has not expired.
func (m *Manager) Valid(sessionID string) bool { return m.sessions.Has(sessionID) }

// Expire ends sessionID immediately. Unknown IDs are ignored.
func (m *Manager) Expire(sessionID string) {
	m.sessions.Delete(sessionID)
	m.logger.Debug("session expired", "session_id", sessionID)
}

// Active returns the number of sessions held, including expired ones not yet purged.
func (m *Manager) Active() int { return m.sessions.Len() }
