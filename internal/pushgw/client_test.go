package pushgw_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telebridge/internal/pushgw"
)

func clientFor(t *testing.T, srv *httptest.Server, job string, timeout time.Duration) *pushgw.Client {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	return pushgw.New(pushgw.Config{Host: u.Hostname(), Port: port, Job: job, Timeout: timeout})
}

func TestJobURL(t *testing.T) {
	assert.Equal(t, "http://localhost:9091/metrics/job/aptos_validator",
		pushgw.JobURL("localhost", 9091, "aptos_validator"))
	assert.Equal(t, "http://localhost:9091/metrics/job/a%2Fb",
		pushgw.JobURL("localhost", 9091, "a/b"))
}

func TestPush_ForwardsBodyAsPlainText(t *testing.T) {
	var gotPath, gotType string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	payload := []byte("# TYPE up gauge\nup 1\n")
	res, err := clientFor(t, srv, "node", time.Second).Push(context.Background(), payload)
	require.NoError(t, err)

	assert.True(t, res.OK())
	assert.Equal(t, "/metrics/job/node", gotPath)
	assert.Equal(t, "text/plain", gotType)
	assert.Equal(t, payload, gotBody)
}

func TestPush_NonSuccessIsAResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "text format parsing error", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	res, err := clientFor(t, srv, "node", time.Second).Push(context.Background(), []byte("x"))
	require.NoError(t, err)
	assert.False(t, res.OK())
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
	assert.Contains(t, res.Body, "parsing error")
}

func TestPush_Unreachable_Fails(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	c := clientFor(t, srv, "node", time.Second)
	srv.Close()

	_, err := c.Push(context.Background(), []byte("x"))
	assert.Error(t, err)
}

func TestPush_Timeout_Fails(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := clientFor(t, srv, "node", 50*time.Millisecond).Push(context.Background(), []byte("x"))
	assert.Error(t, err)
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := pushgw.New(pushgw.Config{Host: "localhost", Port: 9091, Job: "j"})
	assert.Equal(t, pushgw.DefaultTimeout, c.Timeout)
	assert.Equal(t, pushgw.DefaultTimeout, c.HTTP.Timeout)
}
