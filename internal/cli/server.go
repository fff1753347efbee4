// filepath: internal/cli/server.go
package cli

import (
	"context"
	"errors"
	"fmt"
	"greeter/internal/api/handlers"
	"greeter/internal/config"
	"greeter/internal/httpserver"
	"greeter/internal/logging"
	"greeter/internal/services"
	"greeter/internal/shared"
	stdlog "log"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// runServer wires the greeting service into the router and serves until ctx is done.
// The listener is bound before anything is served, so a busy port fails fast.
func runServer(ctx context.Context, cfg *config.Config) error {
	// Service Initialization
	greetingService := services.NewGreetingService(cfg.Greeting.Message)

	h := handlers.NewHandlers(greetingService)
	accessLogger := httpserver.NewAccessLogger(logging.Log, cfg.Logging.AccessLogEnabled())

	ln, err := listen(cfg.Server.Address())
	if err != nil {
		logging.Log.Errorf("Server failed to start: %v", err)
		return err
	}

	errorLog := logging.Log.WriterLevel(logrus.ErrorLevel)
	defer errorLog.Close()

	srv := &http.Server{
		Handler:           httpserver.NewHandler(h, accessLogger),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		ErrorLog:          stdlog.New(errorLog, "", 0),
	}

	return serveHTTP(ctx, srv, ln, cfg.ShutdownTimeout)
}

// listen binds the TCP listener.
func listen(addr string) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot listen on %s: %w", shared.ErrStartup, addr, err)
	}
	return ln, nil
}

// serveHTTP runs srv on ln and shuts it down gracefully once ctx is done.
func serveHTTP(ctx context.Context, srv *http.Server, ln net.Listener, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)

	go func() {
		logging.Log.WithFields(logrus.Fields{
			"addr":    ln.Addr().String(),
			"version": Version,
		}).Info("Server starting")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
