package httpapi

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeReportsReadinessAndStopsOnCancel(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "course_tutor_up 1\n")
	})
	server := NewServer(Config{Metrics: metrics}, NewHandlers(&fakeAnswerer{}, fakeSuggester{}, nil), nil)
	assert.False(t, server.Ready())

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	base := "http://" + listener.Addr().String()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, listener)
	}()

	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/healthz/readiness")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(base + "/healthz/liveness")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(base + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Contains(t, string(body), "course_tutor_up")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.False(t, server.Ready())
}

func TestReadinessBeforeServing(t *testing.T) {
	server := newTestServer(&fakeAnswerer{}, fakeSuggester{})

	req, _ := http.NewRequest(http.MethodGet, "/healthz/readiness", nil)
	rec := httptest.NewRecorder()
	server.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestConfigAddrDefaults(t *testing.T) {
	assert.Equal(t, "0.0.0.0:8000", Config{}.addr())
	assert.Equal(t, "127.0.0.1:9090", Config{Host: "127.0.0.1", Port: 9090}.addr())
}
