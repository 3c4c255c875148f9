package ws

import (
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"recall/internal/app"
	"recall/internal/domain"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Room for the JSON envelope around the text
	messageOverhead = 1024

	// JSON escapes a control byte as \u00XX
	maxEscapedBytesPerByte = 6

	// Size of the send channel buffer
	sendBufferSize = 256
)

var validate = validator.New()

// Client represents a WebSocket client connection
type Client struct {
	conn           *websocket.Conn
	session        *app.DrillSession
	clientID       string
	send           chan []byte
	done           chan struct{}
	logger         *slog.Logger
	maxMessageSize int64
	mu             sync.Mutex
	closed         bool
}

// NewClient creates a new WebSocket client
func NewClient(conn *websocket.Conn, session *app.DrillSession, clientID string, logger *slog.Logger, maxTextBytes int64) *Client {
	return &Client{
		conn:           conn,
		session:        session,
		clientID:       clientID,
		send:           make(chan []byte, sendBufferSize),
		done:           make(chan struct{}),
		logger:         logger,
		maxMessageSize: MaxMessageSize(maxTextBytes),
	}
}

// MaxMessageSize is the largest JSON message that can carry a text of
// maxTextBytes, however it is escaped
func MaxMessageSize(maxTextBytes int64) int64 {
	return maxEscapedBytesPerByte*maxTextBytes + messageOverhead
}

// GetClientID returns the ID of this connection
func (c *Client) GetClientID() string {
	return c.clientID
}

// Send implements app.ClientConnection interface
func (c *Client) Send(message interface{}) error {
	if event, ok := message.(*domain.DrillEvent); ok {
		message = fromEvent(event)
	}

	data, err := json.Marshal(message)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	select {
	case c.send <- data:
		return nil
	default:
		// Buffer full, message dropped
		c.logger.Warn("send buffer full, message dropped", "clientID", c.clientID)
		return nil
	}
}

// Close implements app.ClientConnection interface
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)
	return c.conn.Close()
}

// Run starts the client's read and write pumps
func (c *Client) Run() {
	go c.writePump()
	c.readPump()
}

// readPump pumps messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		c.session.UnregisterClient(c.clientID)
		c.Close()
	}()

	c.conn.SetReadLimit(c.maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("websocket read error", "error", err)
			}
			break
		}

		c.handleMessage(message)
	}
}

// writePump pumps messages from the send channel to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			return
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage processes an incoming message from the client
func (c *Client) handleMessage(data []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid message format")
		return
	}

	switch msg.Type {
	case MsgSetText:
		c.handleSetText(msg.Payload)
	case MsgSetCount:
		c.handleSetCount(msg.Payload)
	case MsgStart:
		c.handleStart()
	case MsgHideWords:
		c.handleHideWords()
	case MsgStartOver:
		c.session.Reset()
	case MsgPing:
		c.sendPong()
	default:
		c.sendError(ErrCodeInvalidMessage, "Unknown message type")
	}
}

// handleSetText handles a set_text message
func (c *Client) handleSetText(payload json.RawMessage) {
	var p SetTextPayload
	if !c.decode(payload, &p) {
		return
	}

	if _, err := c.session.SetText(*p.Text); err != nil {
		c.sendDomainError(err)
	}
}

// handleSetCount handles a set_count message
func (c *Client) handleSetCount(payload json.RawMessage) {
	var p SetCountPayload
	if !c.decode(payload, &p) {
		return
	}

	if _, err := c.session.SetRemoveCount(rawCount(p.Count)); err != nil {
		c.sendDomainError(err)
	}
}

// handleStart handles a start message
func (c *Client) handleStart() {
	if _, err := c.session.Start(); err != nil {
		c.sendDomainError(err)
	}
}

// handleHideWords handles a hide_words message
func (c *Client) handleHideWords() {
	if _, _, err := c.session.HideWords(); err != nil {
		c.sendDomainError(err)
	}
}

// decode unmarshals and validates a message payload
func (c *Client) decode(payload json.RawMessage, v interface{}) bool {
	if len(payload) == 0 {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return false
	}
	if err := json.Unmarshal(payload, v); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Invalid payload")
		return false
	}
	if err := validate.Struct(v); err != nil {
		c.sendError(ErrCodeInvalidMessage, "Validation error: "+err.Error())
		return false
	}
	return true
}

// rawCount turns a JSON number or string into the text a number field holds
func rawCount(raw json.RawMessage) string {
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return str
	}
	return string(raw)
}

// sendConnected sends the connected message to the client
func (c *Client) sendConnected(created bool) {
	payload := &ConnectedPayload{
		DrillID: c.session.GetID(),
		Created: created,
		Drill:   c.session.Snapshot(),
	}

	c.Send(NewServerMessage(MsgConnected, payload))
}

// sendDomainError maps a domain error to an error message
func (c *Client) sendDomainError(err error) {
	switch {
	case errors.Is(err, domain.ErrTextTooLong):
		c.sendError(ErrCodeTextTooLong, "Text is too long")
	case errors.Is(err, domain.ErrInputFrozen):
		c.sendError(ErrCodeInputFrozen, "Text and count are locked while the drill runs")
	case errors.Is(err, domain.ErrNotStarted):
		c.sendError(ErrCodeNotStarted, "Start the drill before removing words")
	case errors.Is(err, domain.ErrAlreadyStarted):
		c.sendError(ErrCodeAlreadyStarted, "Drill already started")
	default:
		c.sendError(ErrCodeInternalError, err.Error())
	}
}

// sendError sends an error message to the client
func (c *Client) sendError(code, message string) {
	payload := &ErrorPayload{
		Code:    code,
		Message: message,
	}

	c.Send(NewServerMessage(MsgError, payload))
}

// sendPong sends a pong message in response to ping
func (c *Client) sendPong() {
	c.Send(NewServerMessage(MsgPong, nil))
}
