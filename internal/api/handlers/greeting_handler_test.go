// filepath: internal/api/handlers/greeting_handler_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"greeter/internal/services"
	"greeter/internal/services/mocks"

	"github.com/stretchr/testify/assert"
)

func TestGetGreeting(t *testing.T) {
	greetingSvc := new(mocks.MockGreetingService)
	greetingSvc.On("GetGreeting").Return("Hello, World!")

	h := NewHandlers(greetingSvc)

	req, err := http.NewRequest("GET", "/", nil)
	assert.NoError(t, err)
	rr := httptest.NewRecorder()

	h.GetGreeting(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello, World!", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	greetingSvc.AssertNumberOfCalls(t, "GetGreeting", 1)
}

// The body reflects the provider's value at call time, byte for byte.
func TestGetGreeting_EchoesProviderValue(t *testing.T) {
	greetings := []string{"Hi", "Grüß Gott!", "line one\nline two", " padded "}

	for _, g := range greetings {
		h := NewHandlers(services.NewGreetingService(g))

		rr := httptest.NewRecorder()
		h.GetGreeting(rr, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []byte(g), rr.Body.Bytes())
	}
}

func TestGetGreeting_IgnoresRequestInput(t *testing.T) {
	greetingSvc := new(mocks.MockGreetingService)
	greetingSvc.On("GetGreeting").Return("Hello, World!")
	h := NewHandlers(greetingSvc)

	req := httptest.NewRequest("GET", "/?name=ignored", strings.NewReader(`{"name":"ignored"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	rr := httptest.NewRecorder()

	h.GetGreeting(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello, World!", rr.Body.String())
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
}
