package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/sparsha/internal/app"
)

// StateHandler exposes the calculator's renderable state and the detection
// toggle.
type StateHandler struct {
	calc Calculator
}

// NewStateHandler creates a new StateHandler over the given calculator.
func NewStateHandler(c Calculator) *StateHandler {
	return &StateHandler{calc: c}
}

type stateResponse struct {
	Enabled bool `json:"enabled"`
	app.Snapshot
}

type updateStateRequest struct {
	Enabled *bool `json:"enabled"`
}

// ServeHTTP handles GET and PUT requests to /api/state.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// get handles GET /api/state and returns the current calculator state.
func (h *StateHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stateResponse{
		Enabled:  h.calc.IsEnabled(),
		Snapshot: h.calc.Snapshot(),
	})
}

// update handles PUT /api/state and toggles touch detection.
func (h *StateHandler) update(w http.ResponseWriter, r *http.Request) {
	var req updateStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Enabled != nil {
		h.calc.SetEnabled(*req.Enabled)
	}

	writeJSON(w, http.StatusOK, stateResponse{
		Enabled:  h.calc.IsEnabled(),
		Snapshot: h.calc.Snapshot(),
	})
}
