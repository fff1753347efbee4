// filepath: internal/services/greeting_service.go
package services

import "greeter/internal/config"

var _ GreetingService = (*greetingService)(nil)

// greetingService holds a single immutable greeting. It is safe for concurrent use.
type greetingService struct {
	message string
}

// NewGreetingService creates a new GreetingService.
// An empty message falls back to config.DefaultGreeting.
func NewGreetingService(message string) *greetingService {
	if message == "" {
		message = config.DefaultGreeting
	}
	return &greetingService{message: message}
}

// GetGreeting returns the configured greeting.
func (s *greetingService) GetGreeting() string {
	return s.message
}
