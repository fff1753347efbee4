package httpserver

import (
	"net/http"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

// AccessLogger writes one structured log line per request.
type AccessLogger struct {
	enabled bool
	logger  *logrus.Logger
}

// NewAccessLogger creates a new instance of AccessLogger.
func NewAccessLogger(logger *logrus.Logger, enabled bool) *AccessLogger {
	return &AccessLogger{enabled: enabled, logger: logger}
}

// Middleware wraps next. A disabled logger returns next unchanged.
func (a *AccessLogger) Middleware(next http.Handler) http.Handler {
	if a == nil || !a.enabled || a.logger == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = ulid.Make().String()
		}

		fields := logrus.Fields{
			"request_id":  requestID,
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.Status(),
			"bytes":       rec.bytes,
			"duration_ms": float64(time.Since(start).Microseconds()) / 1000,
			"remote_addr": r.RemoteAddr,
		}
		if ua := r.UserAgent(); ua != "" {
			fields["user_agent"] = ua
		}

		a.logger.WithFields(fields).Info("HTTP REQUEST")
	})
}

// statusRecorder captures the status code and body size written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// Status returns the written status code, or 200 if the handler wrote nothing.
func (s *statusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
