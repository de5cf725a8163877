package server_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"telebridge/internal/server"
	"telebridge/internal/stats"
)

func TestHandler_TagsRequestsAndCounts(t *testing.T) {
	st := stats.New()
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	srv := httptest.NewServer(server.New(server.Config{}, h, st, zap.NewNop()).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/auth", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Len(t, resp.Header.Get(server.HeaderRequestID), 36)
	assert.Equal(t, 1.0, testutil.ToFloat64(st.Requests.WithLabelValues("auth", "418")))
}

func TestHandler_EveryPathReachesDispatcher(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		paths = append(paths, r.Method+" "+r.URL.Path)
	})
	srv := httptest.NewServer(server.New(server.Config{}, h, nil, zap.NewNop()).Handler())
	defer srv.Close()

	for _, p := range []string{"/", "/api/v1/", "/api/v1/chain-access/", "/deep/ly/nested"} {
		resp, err := http.Get(srv.URL + p)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, p)
	}
	req, err := http.NewRequest(http.MethodPatch, srv.URL+"/x", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"GET /", "GET /api/v1/", "GET /api/v1/chain-access/", "GET /deep/ly/nested", "PATCH /x",
	}, paths)
}

func TestHandler_RecoversPanics(t *testing.T) {
	h := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	srv := httptest.NewServer(server.New(server.Config{}, h, nil, zap.NewNop()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestRun_PortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s := server.New(server.Config{Addr: ln.Addr().String()}, http.NotFoundHandler(), nil, zap.NewNop())
	err = s.Run(context.Background())
	assert.ErrorContains(t, err, "listen")
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	// Reserve a free port, then hand it to the server.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	mln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	maddr := mln.Addr().String()
	require.NoError(t, mln.Close())

	st := stats.New()
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = io.WriteString(w, "up") })
	s := server.New(server.Config{Addr: addr, MetricsAddr: maddr}, h, st, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get("http://" + maddr + "/metrics")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "telebridge_requests_total")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
