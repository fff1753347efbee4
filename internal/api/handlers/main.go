// filepath: internal/api/handlers/main.go
package handlers

import (
	"greeter/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API handlers.
type Handlers struct {
	Greeting services.GreetingService
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(greeting services.GreetingService) *Handlers {
	return &Handlers{
		Greeting: greeting,
	}
}
