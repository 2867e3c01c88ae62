package handlers

import (
	"net/http"

	"artmarket-partner-console/internal/domain"
	"artmarket-partner-console/internal/logx"
)

// SessionHandler serves sign-in state of the console.
type SessionHandler struct {
	sessions sessionManager
	logger   logx.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(logger logx.Logger, sessions sessionManager) *SessionHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &SessionHandler{sessions: sessions, logger: logger}
}

// Get handles GET /session. The token is never echoed.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(h.logger, w, r, http.StatusOK, toSessionDTO(h.sessions.Current()))
}

// Login handles PUT /session.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	s := domain.Session{Token: req.Token, Role: req.Role, UserID: req.UserID, Name: req.Name}
	if err := h.sessions.Login(r.Context(), s); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toSessionDTO(h.sessions.Current()))
}

// Logout handles DELETE /session.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
