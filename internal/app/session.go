package app

import (
	"log/slog"
	"sync"
	"time"

	"recall/internal/domain"
)

// ClientConnection represents a connected client
type ClientConnection interface {
	Send(message interface{}) error
	GetClientID() string
	Close() error
}

// DrillSession wraps a drill with concurrency control and client management.
// Every operation runs under the session lock, so each event is fully
// applied, and its state change queued for broadcast, before the next one
// is looked at.
type DrillSession struct {
	drill     *domain.Drill
	rng       domain.Intner
	mu        sync.RWMutex
	clients   map[string]ClientConnection // clientID -> client
	clientsMu sync.RWMutex
	logger    *slog.Logger

	lastActivity time.Time

	// Event channel for broadcasting
	events chan *domain.DrillEvent
	done   chan struct{}
}

// NewDrillSession creates a new drill session
func NewDrillSession(drill *domain.Drill, rng domain.Intner, logger *slog.Logger) *DrillSession {
	if rng == nil {
		rng = domain.DefaultRand
	}

	session := &DrillSession{
		drill:        drill,
		rng:          rng,
		clients:      make(map[string]ClientConnection),
		logger:       logger.With("drillID", drill.ID),
		lastActivity: time.Now(),
		events:       make(chan *domain.DrillEvent, 100),
		done:         make(chan struct{}),
	}

	// Start event broadcaster
	go session.eventLoop()

	return session
}

// GetID returns the drill ID
func (s *DrillSession) GetID() string {
	return s.drill.ID
}

// GetCreatedAt returns when the drill was created
func (s *DrillSession) GetCreatedAt() time.Time {
	return s.drill.CreatedAt
}

// GetLastActivity returns when the drill last handled an event
func (s *DrillSession) GetLastActivity() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActivity
}

// GetPhase returns the current drill phase
func (s *DrillSession) GetPhase() domain.Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drill.Phase
}

// Snapshot returns the current drill state
func (s *DrillSession) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drill.Snapshot()
}

// RegisterClient registers a client connection
func (s *DrillSession) RegisterClient(clientID string, client ClientConnection) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	s.clients[clientID] = client
}

// UnregisterClient removes a client connection
func (s *DrillSession) UnregisterClient(clientID string) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	delete(s.clients, clientID)
}

// GetClientCount returns the number of connected clients
func (s *DrillSession) GetClientCount() int {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()
	return len(s.clients)
}

// SetText replaces the drill text
func (s *DrillSession) SetText(text string) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.drill.SetText(text); err != nil {
		return s.drill.Snapshot(), err
	}

	return s.commit(domain.EventTextChanged), nil
}

// SetRemoveCount sets how many words each hiding step removes
func (s *DrillSession) SetRemoveCount(raw string) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.drill.SetRemoveCount(raw); err != nil {
		return s.drill.Snapshot(), err
	}

	return s.commit(domain.EventCountChanged), nil
}

// Start moves the drill into the recall phase
func (s *DrillSession) Start() (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.drill.Start(); err != nil {
		return s.drill.Snapshot(), err
	}

	s.logger.Debug("drill started", "words", len(s.drill.Words), "removeCount", s.drill.RemoveCount)

	return s.commit(domain.EventStarted), nil
}

// HideWords hides the next batch of random words
func (s *DrillSession) HideWords() (int, domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added, err := s.drill.HideWords(s.rng)
	if err != nil {
		return 0, s.drill.Snapshot(), err
	}

	s.lastActivity = time.Now()
	snapshot := s.drill.Snapshot()
	s.queueEvent(domain.NewEvent(domain.EventWordsHidden, s.drill.ID, &domain.WordsHiddenPayload{
		Hidden: added,
		Drill:  snapshot,
	}))

	return added, snapshot, nil
}

// Reset clears the drill back to an empty setup
func (s *DrillSession) Reset() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.drill.Reset()

	return s.commit(domain.EventReset)
}

// commit records activity and queues the new state (caller must hold lock)
func (s *DrillSession) commit(eventType domain.EventType) domain.Snapshot {
	s.lastActivity = time.Now()
	snapshot := s.drill.Snapshot()
	s.queueEvent(domain.NewEvent(eventType, s.drill.ID, &domain.StatePayload{Drill: snapshot}))
	return snapshot
}

// queueEvent adds an event to the broadcast queue
func (s *DrillSession) queueEvent(event *domain.DrillEvent) {
	select {
	case s.events <- event:
	default:
		s.logger.Warn("event queue full, dropping event", "type", event.Type)
	}
}

// eventLoop processes events and broadcasts to clients
func (s *DrillSession) eventLoop() {
	for {
		select {
		case <-s.done:
			return
		case event := <-s.events:
			s.broadcastEvent(event)
		}
	}
}

// broadcastEvent sends an event to every client of the drill
func (s *DrillSession) broadcastEvent(event *domain.DrillEvent) {
	s.clientsMu.RLock()
	defer s.clientsMu.RUnlock()

	for clientID, client := range s.clients {
		if err := client.Send(event); err != nil {
			s.logger.Debug("failed to send to client", "clientID", clientID, "error", err)
		}
	}
}

// Close shuts down the session
func (s *DrillSession) Close() {
	select {
	case <-s.done:
		return // Already closed
	default:
		close(s.done)
	}

	// Close all client connections
	s.clientsMu.Lock()
	clients := s.clients
	s.clients = make(map[string]ClientConnection)
	s.clientsMu.Unlock()

	for _, client := range clients {
		client.Close()
	}
}
