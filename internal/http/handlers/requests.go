package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"artmarket-partner-console/internal/logx"
)

// RequestsHandler serves the delivery requests view.
type RequestsHandler struct {
	board  requestsBoard
	logger logx.Logger
}

// NewRequestsHandler creates a new RequestsHandler.
func NewRequestsHandler(logger logx.Logger, board requestsBoard) *RequestsHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &RequestsHandler{board: board, logger: logger}
}

// List handles GET /deliveries/requests.
func (h *RequestsHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.board.Loaded() {
		if err := h.board.Load(r.Context()); err != nil {
			writeAppError(h.logger, w, r, err)
			return
		}
	}
	h.writeList(w, r)
}

// Refresh handles POST /deliveries/requests/refresh.
func (h *RequestsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.board.Load(r.Context()); err != nil && !h.board.Loaded() {
		writeAppError(h.logger, w, r, err)
		return
	}
	h.writeList(w, r)
}

// Accept handles POST /deliveries/requests/{id}/accept.
func (h *RequestsHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var req acceptRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	d, err := h.board.Accept(r.Context(), chi.URLParam(r, "id"), string(req.Fee))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toDeliveryDTO(d))
}

func (h *RequestsHandler) writeList(w http.ResponseWriter, r *http.Request) {
	items := h.board.Items()
	resp := listResponse{Items: toDeliveryDTOs(items), Count: len(items)}
	if err := h.board.LastError(); err != nil {
		resp.Error = err.Error()
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}
