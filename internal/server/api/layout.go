package api

import "net/http"

// LayoutHandler serves the current button layout so the web panel can draw
// the same rectangles the hit tester uses.
type LayoutHandler struct {
	calc Calculator
}

// NewLayoutHandler creates a new LayoutHandler over the given calculator.
func NewLayoutHandler(c Calculator) *LayoutHandler {
	return &LayoutHandler{calc: c}
}

// ServeHTTP handles GET requests to /api/layout.
func (h *LayoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, h.calc.Layout())
}
