package domain

import "time"

// EventType represents the type of drill event
type EventType string

const (
	EventTextChanged  EventType = "TEXT_CHANGED"
	EventCountChanged EventType = "COUNT_CHANGED"
	EventStarted      EventType = "STARTED"
	EventWordsHidden  EventType = "WORDS_HIDDEN"
	EventReset        EventType = "RESET"
)

// DrillEvent represents a change to a drill
type DrillEvent struct {
	Type      EventType   `json:"type"`
	DrillID   string      `json:"drillId"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new drill event
func NewEvent(eventType EventType, drillID string, payload interface{}) *DrillEvent {
	return &DrillEvent{
		Type:      eventType,
		DrillID:   drillID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// StatePayload carries the drill state after a change
type StatePayload struct {
	Drill Snapshot `json:"drill"`
}

// WordsHiddenPayload is sent after a hiding step
type WordsHiddenPayload struct {
	Hidden int      `json:"hidden"`
	Drill  Snapshot `json:"drill"`
}
