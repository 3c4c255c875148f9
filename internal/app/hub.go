package app

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"recall/internal/domain"
)

const (
	// DefaultIdleTimeout is how long a drill without clients survives
	DefaultIdleTimeout = 2 * time.Hour

	// DefaultCleanupInterval is how often idle drills are looked for
	DefaultCleanupInterval = 10 * time.Minute
)

// HubOptions configures a DrillHub
type HubOptions struct {
	IdleTimeout     time.Duration
	CleanupInterval time.Duration
	// MaxTextBytes bounds the text of every drill; zero means no limit
	MaxTextBytes int64
	// NewRand returns the randomness source for a new drill; nil uses the
	// math/rand global source.
	NewRand func() domain.Intner
}

// DrillHub manages all live drills
type DrillHub struct {
	sessions map[string]*DrillSession
	mu       sync.RWMutex
	opts     HubOptions
	logger   *slog.Logger
	done     chan struct{}
	once     sync.Once
}

// NewDrillHub creates a new drill hub
func NewDrillHub(logger *slog.Logger, opts HubOptions) *DrillHub {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = DefaultIdleTimeout
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = DefaultCleanupInterval
	}

	hub := &DrillHub{
		sessions: make(map[string]*DrillSession),
		opts:     opts,
		logger:   logger,
		done:     make(chan struct{}),
	}

	// Start cleanup goroutine
	go hub.cleanupLoop()

	return hub
}

// CreateDrill creates a new drill and returns its session
func (h *DrillHub) CreateDrill() *DrillSession {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := uuid.New().String()

	var rng domain.Intner
	if h.opts.NewRand != nil {
		rng = h.opts.NewRand()
	}

	drill := domain.NewDrill(id)
	drill.MaxTextBytes = h.opts.MaxTextBytes

	session := NewDrillSession(drill, rng, h.logger)
	h.sessions[id] = session

	h.logger.Info("drill created", "drillID", id)

	return session
}

// GetSession returns a drill session by ID
func (h *DrillHub) GetSession(drillID string) (*DrillSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[drillID]
	if !ok {
		return nil, domain.ErrDrillNotFound
	}

	return session, nil
}

// GetOrCreate returns the drill with the given ID, or a new drill when the
// ID is empty or unknown
func (h *DrillHub) GetOrCreate(drillID string) (*DrillSession, bool) {
	if drillID != "" {
		if session, err := h.GetSession(drillID); err == nil {
			return session, false
		}
	}
	return h.CreateDrill(), true
}

// DeleteSession removes a drill session
func (h *DrillHub) DeleteSession(drillID string) error {
	h.mu.Lock()
	session, ok := h.sessions[drillID]
	if ok {
		delete(h.sessions, drillID)
	}
	h.mu.Unlock()

	if !ok {
		return domain.ErrDrillNotFound
	}

	session.Close()
	h.logger.Info("drill deleted", "drillID", drillID)
	return nil
}

// GetSessionCount returns the number of live drills
func (h *DrillHub) GetSessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// GetClientCount returns the number of connected clients across all drills
func (h *DrillHub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.GetClientCount()
	}
	return total
}

// Close shuts down the hub and all sessions
func (h *DrillHub) Close() {
	h.once.Do(func() { close(h.done) })

	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*DrillSession)
	h.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}

// cleanupLoop periodically cleans up idle drills
func (h *DrillHub) cleanupLoop() {
	ticker := time.NewTicker(h.opts.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.CleanupIdle(time.Now())
		}
	}
}

// CleanupIdle removes drills that have no clients and have been idle longer
// than the idle timeout, and returns how many were removed
func (h *DrillHub) CleanupIdle(now time.Time) int {
	h.mu.Lock()
	stale := make([]*DrillSession, 0)
	for drillID, session := range h.sessions {
		if session.GetClientCount() == 0 && now.Sub(session.GetLastActivity()) > h.opts.IdleTimeout {
			stale = append(stale, session)
			delete(h.sessions, drillID)
		}
	}
	h.mu.Unlock()

	for _, session := range stale {
		session.Close()
		h.logger.Info("idle drill cleaned up", "drillID", session.GetID())
	}

	return len(stale)
}
