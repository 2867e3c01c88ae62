package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"artmarket-partner-console/internal/logx"
)

// DeliveriesHandler serves the active deliveries view.
type DeliveriesHandler struct {
	board  activeBoard
	logger logx.Logger
}

// NewDeliveriesHandler creates a new DeliveriesHandler.
func NewDeliveriesHandler(logger logx.Logger, board activeBoard) *DeliveriesHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &DeliveriesHandler{board: board, logger: logger}
}

// List handles GET /deliveries/active.
// The list is fetched on first use and when refresh=true. A failed refresh
// keeps the previous list and reports the failure in the error field.
func (h *DeliveriesHandler) List(w http.ResponseWriter, r *http.Request) {
	if parseBool(r.URL.Query().Get("refresh")) || !h.board.Loaded() {
		if err := h.board.Load(r.Context()); err != nil && !h.board.Loaded() {
			writeAppError(h.logger, w, r, err)
			return
		}
	}

	items := h.board.Items()
	resp := listResponse{Items: toDeliveryDTOs(items), Count: len(items)}
	if err := h.board.LastError(); err != nil {
		resp.Error = err.Error()
	}
	writeJSON(h.logger, w, r, http.StatusOK, resp)
}

// UpdateStatus handles POST /deliveries/active/{id}/status.
func (h *DeliveriesHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	res, err := h.board.Advance(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, advanceResponse{
		Delivery:      toDeliveryDTO(res.Delivery),
		Message:       res.Message,
		PlatformFee:   res.PlatformFee,
		PaymentAmount: res.PaymentAmount,
	})
}

// Next handles POST /deliveries/active/{id}/next.
func (h *DeliveriesHandler) Next(w http.ResponseWriter, r *http.Request) {
	res, err := h.board.AdvanceNext(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, advanceResponse{
		Delivery:      toDeliveryDTO(res.Delivery),
		Message:       res.Message,
		PlatformFee:   res.PlatformFee,
		PaymentAmount: res.PaymentAmount,
	})
}
