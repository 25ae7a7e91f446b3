package api

import (
	"net/http"

	"github.com/ayusman/sparsha/internal/calc"
)

// HistoryHandler exposes the calculation log.
type HistoryHandler struct {
	calc Calculator
}

// NewHistoryHandler creates a new HistoryHandler over the given calculator.
func NewHistoryHandler(c Calculator) *HistoryHandler {
	return &HistoryHandler{calc: c}
}

type historyResponse struct {
	Entries []calc.Entry `json:"entries"`
}

// ServeHTTP handles GET and DELETE requests to /api/history.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		entries := h.calc.History()
		if entries == nil {
			entries = []calc.Entry{}
		}
		writeJSON(w, http.StatusOK, historyResponse{Entries: entries})
	case http.MethodDelete:
		h.calc.ResetHistory()
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
