// filepath: internal/services/interfaces.go
package services

// GreetingService defines the interface for the greeting service.
type GreetingService interface {
	// GetGreeting returns the greeting served on the root route.
	// It never fails and never returns an empty string.
	GetGreeting() string
}
