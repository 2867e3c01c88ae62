package handlers

import (
	"net/http"
	"strings"

	"artmarket-partner-console/internal/logx"
	"artmarket-partner-console/internal/service/history"
)

// HistoryHandler serves the delivery history view.
type HistoryHandler struct {
	view   historyView
	logger logx.Logger
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(logger logx.Logger, view historyView) *HistoryHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &HistoryHandler{view: view, logger: logger}
}

// List handles GET /deliveries/history?status=&type=&q=&sort=&dir=.
// Without sort the view's current sort applies.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()
	q := history.Query{
		Status:      qs.Get("status"),
		RequestType: qs.Get("type"),
		Search:      qs.Get("q"),
	}

	if f := strings.TrimSpace(qs.Get("sort")); f != "" {
		field := history.SortField(f)
		if !field.Valid() {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid sort field")
			return
		}
		q.Sort.Field = field
		switch strings.ToLower(strings.TrimSpace(qs.Get("dir"))) {
		case "", "asc":
		case "desc":
			q.Sort.Desc = true
		default:
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid sort direction")
			return
		}
	} else {
		q.Sort = h.view.SortState()
	}

	items, err := h.view.List(r.Context(), q)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, historyResponse{
		Items: toDeliveryDTOs(items),
		Count: len(items),
		Sort:  toSortDTO(q.Sort),
	})
}

// ToggleSort handles POST /deliveries/history/sort: a column header click.
func (h *HistoryHandler) ToggleSort(w http.ResponseWriter, r *http.Request) {
	var req toggleSortRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}
	if !req.Field.Valid() {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid sort field")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, toSortDTO(h.view.Toggle(req.Field)))
}
