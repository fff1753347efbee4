// filepath: internal/api/handlers/greeting_handler.go
package handlers

import (
	"net/http"
)

// GetGreeting writes the greeting as the full response body.
// Request body, query and headers are ignored.
func (h *Handlers) GetGreeting(w http.ResponseWriter, r *http.Request) {
	respondWithText(w, http.StatusOK, h.Greeting.GetGreeting())
}
