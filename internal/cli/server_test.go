package cli

import (
	"context"
	"errors"
	"greeter/internal/api/handlers"
	"greeter/internal/config"
	"greeter/internal/httpserver"
	"greeter/internal/services"
	"greeter/internal/shared"
	"io"
	"net"
	"net/http"
	"os"
	"os/exec"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// occupyPort binds a loopback port for the duration of the test.
func occupyPort(t *testing.T) net.Listener {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })
	return ln
}

func portOf(ln net.Listener) string {
	return strconv.Itoa(ln.Addr().(*net.TCPAddr).Port)
}

func TestRunServer_PortInUse(t *testing.T) {
	ln := occupyPort(t)

	cfg := config.Defaults()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, cfg.ParseAndValidate())

	done := make(chan error, 1)
	go func() { done <- runServer(context.Background(), cfg) }()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, shared.ErrStartup)
	case <-time.After(5 * time.Second):
		t.Fatal("runServer did not fail on an occupied port")
	}
}

func TestListen_InvalidAddress(t *testing.T) {
	_, err := listen("127.0.0.1:99999")
	assert.ErrorIs(t, err, shared.ErrStartup)
}

func TestServe_ServesUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	h := handlers.NewHandlers(services.NewGreetingService("Hello, World!"))
	srv := &http.Server{Handler: httpserver.NewHandler(h, nil)}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serveHTTP(ctx, srv, ln, 5*time.Second) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello, World!", string(body))
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serveHTTP did not return after cancellation")
	}

	_, err = http.Get("http://" + ln.Addr().String() + "/")
	assert.Error(t, err)
}

func TestServe_ListenerClosedUnderneath(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := &http.Server{Handler: http.NotFoundHandler()}
	done := make(chan error, 1)
	go func() { done <- serveHTTP(context.Background(), srv, ln, time.Second) }()

	// Give Serve a moment to start accepting, then pull the listener away.
	time.Sleep(50 * time.Millisecond)
	ln.Close()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.False(t, errors.Is(err, http.ErrServerClosed))
	case <-time.After(5 * time.Second):
		t.Fatal("serveHTTP did not return after the listener closed")
	}
}

// TestExecute_StartupFailureExitCode re-runs the test binary as the CLI so the
// os.Exit path of Execute can be observed.
func TestExecute_StartupFailureExitCode(t *testing.T) {
	if os.Getenv("GREETER_TEST_EXECUTE") == "1" {
		os.Args = []string{"greeter",
			"--config_path", os.Getenv("GREETER_TEST_CONFIG"),
			"--host", "127.0.0.1",
			"--port", os.Getenv("GREETER_TEST_PORT"),
		}
		Execute()
		return
	}

	ln := occupyPort(t)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=^TestExecute_StartupFailureExitCode$")
	cmd.Env = append(os.Environ(),
		"GREETER_TEST_EXECUTE=1",
		"GREETER_TEST_PORT="+portOf(ln),
		"GREETER_TEST_CONFIG="+missingConfig(t),
	)
	out, err := cmd.CombinedOutput()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr, "output: %s", out)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, string(out), "startup failed")
}
