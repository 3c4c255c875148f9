package ws

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"recall/internal/app"
)

// Handler handles WebSocket connections
type Handler struct {
	hub          *app.DrillHub
	upgrader     websocket.Upgrader
	logger       *slog.Logger
	maxTextBytes int64
}

// NewHandler creates a new WebSocket handler. maxTextBytes bounds the size
// of incoming messages.
func NewHandler(hub *app.DrillHub, logger *slog.Logger, maxTextBytes int64) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger:       logger,
		maxTextBytes: maxTextBytes,
	}
}

// ServeHTTP handles WebSocket upgrade requests. A missing or unknown
// drillId gets a fresh drill.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, created := h.hub.GetOrCreate(r.URL.Query().Get("drillId"))

	// Upgrade connection to WebSocket
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		if created {
			_ = h.hub.DeleteSession(session.GetID())
		}
		return
	}

	clientID := uuid.New().String()
	client := NewClient(conn, session, clientID, h.logger, h.maxTextBytes)
	session.RegisterClient(clientID, client)

	h.logger.Info("websocket connected",
		"drillID", session.GetID(),
		"clientID", clientID,
		"created", created,
	)

	client.sendConnected(created)

	// Start the client
	client.Run()
}
