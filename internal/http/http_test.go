package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/enigma/internal/metrics"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func get(handler http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestMetricsServer_Endpoints(t *testing.T) {
	provider, err := metrics.NewProvider("test_app")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	server := NewMetricsServer("localhost", 8081, discardLogger(), provider)
	handler := server.GetHandler()

	t.Run("Healthz", func(t *testing.T) {
		w := get(handler, "/healthz")

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response["status"])
	})

	t.Run("Metrics", func(t *testing.T) {
		w := get(handler, "/metrics")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
		assert.Contains(t, w.Body.String(), `test_app_http_requests_total`)
		assert.Contains(t, w.Body.String(), `path="/healthz"`)
	})

	t.Run("NotFound", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get(handler, "/unknown").Code)
	})
}

func TestMetricsServer_WithoutProvider(t *testing.T) {
	server := NewMetricsServer("localhost", 8081, discardLogger(), nil)

	assert.Equal(t, http.StatusNotFound, get(server.GetHandler(), "/metrics").Code)
	assert.Equal(t, http.StatusOK, get(server.GetHandler(), "/healthz").Code)
	assert.Equal(t, "localhost:8081", server.Addr())
}

func TestMetricsServer_RequestID(t *testing.T) {
	server := NewMetricsServer("localhost", 8081, discardLogger(), nil)

	w := get(server.GetHandler(), "/healthz")

	requestID := w.Header().Get("X-Request-ID")
	require.NotEmpty(t, requestID)
	parsed, err := uuid.Parse(requestID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestMetricsServer_RateLimit(t *testing.T) {
	t.Run("rejects requests over the burst", func(t *testing.T) {
		server := NewMetricsServer("localhost", 8081, discardLogger(), nil, WithRateLimit(0.001, 2))
		handler := server.GetHandler()

		assert.Equal(t, http.StatusOK, get(handler, "/healthz").Code)
		assert.Equal(t, http.StatusOK, get(handler, "/healthz").Code)

		w := get(handler, "/healthz")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "rate_limit_exceeded")
	})

	t.Run("disabled with non-positive rps", func(t *testing.T) {
		server := NewMetricsServer("localhost", 8081, discardLogger(), nil, WithRateLimit(0, 1))
		handler := server.GetHandler()

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, get(handler, "/healthz").Code)
		}
	})
}

func TestRateLimiterStore_Sweep(t *testing.T) {
	store := newRateLimiterStore(1, 1)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	store.lastSweep = now

	first := store.getLimiter("10.0.0.1")
	assert.Same(t, first, store.getLimiter("10.0.0.1"))
	store.getLimiter("10.0.0.2")
	assert.Equal(t, 2, store.size())

	now = now.Add(limiterIdleTTL + limiterSweepInterval)
	store.getLimiter("10.0.0.3")

	assert.Equal(t, 1, store.size())
	assert.NotSame(t, first, store.getLimiter("10.0.0.1"))
}

func TestMetricsServer_StartAndShutdown(t *testing.T) {
	server := NewMetricsServer("127.0.0.1", 0, discardLogger(), nil)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start(context.Background())
	}()

	require.Eventually(t, func() bool {
		return server.Addr() != "127.0.0.1:0"
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + server.Addr() + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, server.Shutdown(shutdownCtx))

	select {
	case err := <-errChan:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("metrics server did not stop")
	}
}

func TestMetricsServer_StartAddressInUse(t *testing.T) {
	first := NewMetricsServer("127.0.0.1", 0, discardLogger(), nil)
	go func() {
		_ = first.Start(context.Background())
	}()
	require.Eventually(t, func() bool {
		return first.Addr() != "127.0.0.1:0"
	}, 2*time.Second, 10*time.Millisecond)
	defer func() {
		assert.NoError(t, first.Shutdown(context.Background()))
	}()

	host, port := splitAddr(t, first.Addr())
	second := NewMetricsServer(host, port, discardLogger(), nil)

	err := second.Start(context.Background())

	assert.ErrorContains(t, err, "failed to start metrics server")
}

func TestMetricsServer_ListenThenServe(t *testing.T) {
	t.Run("ListenReportsBusyPort", func(t *testing.T) {
		first := NewMetricsServer("127.0.0.1", 0, discardLogger(), nil)
		require.NoError(t, first.Listen(context.Background()))
		defer func() {
			assert.NoError(t, first.Shutdown(context.Background()))
		}()

		host, port := splitAddr(t, first.Addr())
		second := NewMetricsServer(host, port, discardLogger(), nil)

		err := second.Listen(context.Background())

		assert.ErrorContains(t, err, "failed to start metrics server")
	})

	t.Run("ServeUsesBoundListener", func(t *testing.T) {
		server := NewMetricsServer("127.0.0.1", 0, discardLogger(), nil)
		require.NoError(t, server.Listen(context.Background()))
		addr := server.Addr()
		assert.NotEqual(t, "127.0.0.1:0", addr)

		errChan := make(chan error, 1)
		go func() {
			errChan <- server.Serve()
		}()

		require.Eventually(t, func() bool {
			resp, err := http.Get("http://" + addr + "/healthz")
			if err != nil {
				return false
			}
			_ = resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 2*time.Second, 10*time.Millisecond)

		require.NoError(t, server.Shutdown(context.Background()))
		select {
		case err := <-errChan:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Fatal("metrics server did not stop")
		}
	})

	t.Run("ShutdownReleasesUnservedListener", func(t *testing.T) {
		server := NewMetricsServer("127.0.0.1", 0, discardLogger(), nil)
		require.NoError(t, server.Listen(context.Background()))
		host, port := splitAddr(t, server.Addr())

		require.NoError(t, server.Shutdown(context.Background()))

		again := NewMetricsServer(host, port, discardLogger(), nil)
		require.NoError(t, again.Listen(context.Background()))
		assert.NoError(t, again.Shutdown(context.Background()))
	})

	t.Run("ServeWithoutListen", func(t *testing.T) {
		server := NewMetricsServer("127.0.0.1", 0, discardLogger(), nil)

		assert.ErrorIs(t, server.Serve(), errMetricsServerNotListening)
	})
}

func TestCustomLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	router := gin.New()
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	tests := []struct {
		path   string
		status int
		level  string
	}{
		{path: "/ok", status: http.StatusOK, level: "DEBUG"},
		{path: "/missing", status: http.StatusNotFound, level: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			buf.Reset()

			w := get(router, tt.path)

			assert.Equal(t, tt.status, w.Code)
			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, "http request", entry["msg"])
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.path, entry["path"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.Contains(t, entry, "request_id")
		})
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(CustomLoggerMiddleware(discardLogger()))
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := get(router, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func splitAddr(t *testing.T, addr string) (string, int) {
	t.Helper()
	host, portText, err := net.SplitHostPort(addr)
	require.NoError(t, err)
	port, err := strconv.Atoi(portText)
	require.NoError(t, err)
	return host, port
}
