package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/sparsha/internal/calc"
)

// PressHandler applies button activations sent over HTTP, bypassing the
// camera. The web panel's click fallback uses this.
type PressHandler struct {
	calc Calculator
}

// NewPressHandler creates a new PressHandler over the given calculator.
func NewPressHandler(c Calculator) *PressHandler {
	return &PressHandler{calc: c}
}

type pressRequest struct {
	Button string `json:"button"`
}

// ServeHTTP handles POST requests to /api/press.
func (h *PressHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req pressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Button == "" {
		writeError(w, http.StatusBadRequest, "button is required")
		return
	}

	if err := h.calc.ForceButton(calc.ButtonID(req.Button)); err != nil {
		writeError(w, http.StatusBadRequest, "Unknown button")
		return
	}

	writeJSON(w, http.StatusOK, h.calc.Snapshot())
}
