package httpserver

import (
	"greeter/internal/api/handlers"
	"net/http"

	"github.com/gorilla/mux"
)

// SetupRouter configures the main router.
// Unmatched paths and methods fall through to the router's own 404 and 405 responses.
func SetupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.GetGreeting).Methods("GET")

	return r
}

// NewHandler returns the router wrapped in the access logger.
// The logger wraps the router rather than being attached with r.Use so that
// requests rejected with 404 or 405 are logged as well.
func NewHandler(h *handlers.Handlers, accessLogger *AccessLogger) http.Handler {
	return accessLogger.Middleware(SetupRouter(h))
}
