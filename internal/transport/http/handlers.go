package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"recall/internal/app"
	"recall/internal/domain"
	"recall/internal/transport/ws"
)

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeDrillNotFound  = "DRILL_NOT_FOUND"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeTextTooLong    = "TEXT_TOO_LONG"
	ErrCodeInputFrozen    = "INPUT_FROZEN"
	ErrCodeNotStarted     = "NOT_STARTED"
	ErrCodeAlreadyStarted = "ALREADY_STARTED"
	ErrCodeInternalError  = "INTERNAL_ERROR"
)

// SetTextRequest is the body of PUT /api/drills/{drillID}/text
type SetTextRequest struct {
	Text *string `json:"text" validate:"required"`
}

// SetCountRequest is the body of PUT /api/drills/{drillID}/count.
// Count may be a JSON number or string; it is read like a number field.
type SetCountRequest struct {
	Count json.RawMessage `json:"count" validate:"required"`
}

// DrillResponse is the response for drill endpoints
type DrillResponse struct {
	Drill domain.Snapshot `json:"drill"`
}

// CreateDrillResponse is the response for drill creation
type CreateDrillResponse struct {
	DrillID string          `json:"drillId"`
	Drill   domain.Snapshot `json:"drill"`
}

// HideResponse is the response for a hiding step
type HideResponse struct {
	Hidden int             `json:"hidden"`
	Drill  domain.Snapshot `json:"drill"`
}

// SampleResponse is the response for the sample passage endpoint
type SampleResponse struct {
	Text string `json:"text"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for stats endpoint
type StatsResponse struct {
	ActiveDrills     int `json:"activeDrills"`
	ConnectedClients int `json:"connectedClients"`
}

// handleCreateDrill handles POST /api/drills
func (s *Server) handleCreateDrill(w http.ResponseWriter, r *http.Request) {
	session := s.hub.CreateDrill()

	s.sendJSON(w, http.StatusCreated, &CreateDrillResponse{
		DrillID: session.GetID(),
		Drill:   session.Snapshot(),
	})
}

// handleGetDrill handles GET /api/drills/{drillID}
func (s *Server) handleGetDrill(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	s.sendSuccess(w, &DrillResponse{Drill: session.Snapshot()})
}

// handleDeleteDrill handles DELETE /api/drills/{drillID}
func (s *Server) handleDeleteDrill(w http.ResponseWriter, r *http.Request) {
	if err := s.hub.DeleteSession(chi.URLParam(r, "drillID")); err != nil {
		s.sendDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSetText handles PUT /api/drills/{drillID}/text
func (s *Server) handleSetText(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req SetTextRequest
	if !s.decode(w, r, &req) {
		return
	}

	snapshot, err := session.SetText(*req.Text)
	if err != nil {
		s.sendDomainError(w, err)
		return
	}

	s.sendSuccess(w, &DrillResponse{Drill: snapshot})
}

// handleSetCount handles PUT /api/drills/{drillID}/count
func (s *Server) handleSetCount(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req SetCountRequest
	if !s.decode(w, r, &req) {
		return
	}

	snapshot, err := session.SetRemoveCount(rawCount(req.Count))
	if err != nil {
		s.sendDomainError(w, err)
		return
	}

	s.sendSuccess(w, &DrillResponse{Drill: snapshot})
}

// handleStart handles POST /api/drills/{drillID}/start
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	snapshot, err := session.Start()
	if err != nil {
		s.sendDomainError(w, err)
		return
	}

	s.sendSuccess(w, &DrillResponse{Drill: snapshot})
}

// handleHide handles POST /api/drills/{drillID}/hide
func (s *Server) handleHide(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	hidden, snapshot, err := session.HideWords()
	if err != nil {
		s.sendDomainError(w, err)
		return
	}

	s.sendSuccess(w, &HideResponse{Hidden: hidden, Drill: snapshot})
}

// handleReset handles POST /api/drills/{drillID}/reset
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	s.sendSuccess(w, &DrillResponse{Drill: session.Reset()})
}

// handleSample handles GET /api/sample
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &SampleResponse{Text: app.RandomPassage()})
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{
		Status: "ok",
	})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &StatsResponse{
		ActiveDrills:     s.hub.GetSessionCount(),
		ConnectedClients: s.hub.GetClientCount(),
	})
}

// handleStatic serves static files
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	// Strip /static/ prefix
	path := strings.TrimPrefix(r.URL.Path, "/static/")

	file, err := s.webFS.Open("static/" + path)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		http.NotFound(w, r)
		return
	}

	seeker, ok := file.(io.ReadSeeker)
	if !ok {
		http.NotFound(w, r)
		return
	}

	http.ServeContent(w, r, stat.Name(), stat.ModTime(), seeker)
}

// handleSPA serves the single-page screen for every other path
func (s *Server) handleSPA(w http.ResponseWriter, r *http.Request) {
	file, err := s.webFS.Open("index.html")
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	seeker, ok := file.(io.ReadSeeker)
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	http.ServeContent(w, r, "index.html", stat.ModTime(), seeker)
}

// lookup resolves the drill named in the URL, writing a 404 when missing
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*app.DrillSession, bool) {
	session, err := s.hub.GetSession(chi.URLParam(r, "drillID"))
	if err != nil {
		s.sendDomainError(w, err)
		return nil, false
	}
	return session, true
}

// decode reads and validates a JSON request body, writing a 400 on failure
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, ws.MaxMessageSize(s.config.Drill.MaxTextBytes))

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.sendError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Invalid request format")
		return false
	}

	if err := s.validator.Struct(v); err != nil {
		s.sendError(w, http.StatusBadRequest, ErrCodeInvalidRequest, "Validation error: "+err.Error())
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

// sendDomainError maps a domain error to a status and code
func (s *Server) sendDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDrillNotFound):
		s.sendError(w, http.StatusNotFound, ErrCodeDrillNotFound, "Drill not found")
	case errors.Is(err, domain.ErrTextTooLong):
		s.sendError(w, http.StatusRequestEntityTooLarge, ErrCodeTextTooLong, "Text is too long")
	case errors.Is(err, domain.ErrInputFrozen):
		s.sendError(w, http.StatusConflict, ErrCodeInputFrozen, "Text and count are locked while the drill runs")
	case errors.Is(err, domain.ErrNotStarted):
		s.sendError(w, http.StatusConflict, ErrCodeNotStarted, "Start the drill before removing words")
	case errors.Is(err, domain.ErrAlreadyStarted):
		s.sendError(w, http.StatusConflict, ErrCodeAlreadyStarted, "Drill already started")
	default:
		s.logger.Error("unexpected drill error", "error", err)
		s.sendError(w, http.StatusInternalServerError, ErrCodeInternalError, "Internal server error")
	}
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	s.sendJSON(w, http.StatusOK, data)
}

// sendJSON sends a successful JSON response with the given status
func (s *Server) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&Response{
		Success: true,
		Data:    data,
	}); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}); err != nil {
		s.logger.Error("failed to encode JSON response", "error", err)
	}
}
