// filepath: internal/services/mocks/greeting_mock.go
package mocks

import (
	"greeter/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockGreetingService is a mock implementation of services.GreetingService
type MockGreetingService struct {
	mock.Mock
}

var _ services.GreetingService = (*MockGreetingService)(nil)

func (m *MockGreetingService) GetGreeting() string {
	args := m.Called()
	return args.String(0)
}
