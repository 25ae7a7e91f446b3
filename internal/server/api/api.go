// Package api provides the HTTP API handlers for the virtual-touch
// calculator.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/sparsha/internal/app"
	"github.com/ayusman/sparsha/internal/calc"
	"github.com/ayusman/sparsha/internal/touch"
)

// Calculator is the surface of the running application the API exposes.
// *app.App satisfies it; tests substitute a fake.
type Calculator interface {
	Snapshot() app.Snapshot
	ForceButton(id calc.ButtonID) error
	History() []calc.Entry
	ResetHistory()
	Layout() touch.Layout
	IsEnabled() bool
	SetEnabled(enabled bool)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
