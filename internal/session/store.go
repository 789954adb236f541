// Package session keeps one invoice editor per browser session in memory.
// Sessions that stay idle longer than the TTL are dropped.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ridwanfathin/whatsapp-billing/internal/editor"
	"github.com/ridwanfathin/whatsapp-billing/internal/logger"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or expired session ids
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the session store
type Config struct {
	TTL           time.Duration
	SweepInterval time.Duration
	// MaxSessions caps live sessions. When full, the least recently used
	// session is evicted to make room.
	MaxSessions int
}

type entry struct {
	editor   *editor.Editor
	lastSeen time.Time
}

// Store maps session ids to editors
type Store struct {
	mu        sync.Mutex
	sessions  map[string]*entry
	ttl       time.Duration
	sweep     time.Duration
	max       int
	newEditor func() *editor.Editor
	now       func() time.Time
	logger    *zap.Logger
}

// NewStore creates a store that builds editors with newEditor
func NewStore(cfg Config, newEditor func() *editor.Editor, logger *zap.Logger) *Store {
	if cfg.TTL <= 0 {
		cfg.TTL = 12 * time.Hour
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = time.Minute
	}
	if cfg.MaxSessions <= 0 {
		cfg.MaxSessions = 10000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		sessions:  make(map[string]*entry),
		ttl:       cfg.TTL,
		sweep:     cfg.SweepInterval,
		max:       cfg.MaxSessions,
		newEditor: newEditor,
		now:       time.Now,
		logger:    logger,
	}
}

// Create starts a new session and returns its id
func (s *Store) Create() (string, *editor.Editor) {
	id := uuid.NewString()
	ed := s.newEditor()

	s.mu.Lock()
	evicted := ""
	if len(s.sessions) >= s.max {
		s.sweepLocked()
	}
	if len(s.sessions) >= s.max {
		evicted = s.evictLeastRecentLocked()
	}
	s.sessions[id] = &entry{editor: ed, lastSeen: s.now()}
	s.mu.Unlock()

	if evicted != "" {
		s.logger.Warn("session limit reached, evicted least recently used session",
			zap.Int("max_sessions", s.max),
			zap.String("evicted", logger.MaskLast4(evicted)))
	}
	s.logger.Debug("session created", zap.String("session", logger.MaskLast4(id)))
	return id, ed
}

// Get returns the editor of a live session and marks it as used
func (s *Store) Get(id string) (*editor.Editor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok || s.expired(e) {
		return nil, ErrSessionNotFound
	}
	e.lastSeen = s.now()
	return e.editor, nil
}

// GetOrCreate returns the session for id, starting a new one when id is
// unknown or expired. The returned id is the one to hand back to the client.
func (s *Store) GetOrCreate(id string) (string, *editor.Editor, bool) {
	if id != "" {
		if ed, err := s.Get(id); err == nil {
			return id, ed, false
		}
	}
	newID, ed := s.Create()
	return newID, ed, true
}

// Delete ends a session
func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len returns the number of sessions held, expired ones included until swept
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops expired sessions and returns how many were removed
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked()
}

func (s *Store) sweepLocked() int {
	removed := 0
	for id, e := range s.sessions {
		if s.expired(e) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// evictLeastRecentLocked drops the session idle the longest and returns its id
func (s *Store) evictLeastRecentLocked() string {
	var oldestID string
	var oldest time.Time
	for id, e := range s.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = id, e.lastSeen
		}
	}
	delete(s.sessions, oldestID)
	return oldestID
}

// Run sweeps periodically until ctx is cancelled
func (s *Store) Run(ctx context.Context) {
	ticker := time.NewTicker(s.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Info("expired sessions removed", zap.Int("count", n))
			}
		}
	}
}

func (s *Store) expired(e *entry) bool {
	return s.now().Sub(e.lastSeen) > s.ttl
}
