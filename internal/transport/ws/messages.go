package ws

import (
	"encoding/json"
	"time"

	"recall/internal/domain"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgSetText   MessageType = "set_text"
	MsgSetCount  MessageType = "set_count"
	MsgStart     MessageType = "start"
	MsgHideWords MessageType = "hide_words"
	MsgStartOver MessageType = "start_over"
	MsgPing      MessageType = "ping"
)

// Server → Client message types
const (
	MsgConnected   MessageType = "connected"
	MsgState       MessageType = "state"
	MsgWordsHidden MessageType = "words_hidden"
	MsgError       MessageType = "error"
	MsgPong        MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// fromEvent converts a drill event into the message clients understand
func fromEvent(event *domain.DrillEvent) *ServerMessage {
	if event.Type == domain.EventWordsHidden {
		return NewServerMessage(MsgWordsHidden, event.Payload)
	}
	return NewServerMessage(MsgState, event.Payload)
}

// Client message payloads

// SetTextPayload is the payload for set_text message
type SetTextPayload struct {
	Text *string `json:"text" validate:"required"`
}

// SetCountPayload is the payload for set_count message; count may be a
// number or a string
type SetCountPayload struct {
	Count json.RawMessage `json:"count" validate:"required"`
}

// Server message payloads

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	DrillID string          `json:"drillId"`
	Created bool            `json:"created"`
	Drill   domain.Snapshot `json:"drill"`
}

// ErrorPayload is the payload for error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeTextTooLong    = "TEXT_TOO_LONG"
	ErrCodeInputFrozen    = "INPUT_FROZEN"
	ErrCodeNotStarted     = "NOT_STARTED"
	ErrCodeAlreadyStarted = "ALREADY_STARTED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)
