// internal/api/handlers/responses.go
package handlers

import (
	"greeter/internal/logging"
	"io"
	"net/http"
)

// respondWithText sends a plain text response with the body written verbatim.
func respondWithText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	if _, err := io.WriteString(w, body); err != nil {
		logging.Log.Debugf("Failed to write response body: %v", err)
	}
}
