package stats_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telebridge/internal/stats"
)

func TestObserveForward(t *testing.T) {
	s := stats.New()
	s.ObserveForward(time.Millisecond, 200)
	s.ObserveForward(time.Millisecond, 503)
	s.ObserveForward(time.Millisecond, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.GatewayResponses.WithLabelValues("200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.GatewayResponses.WithLabelValues("503")))
	assert.Equal(t, 1.0, testutil.ToFloat64(s.RelayFailures.WithLabelValues(stats.ReasonTransport)))
}

func TestHandler_ExposesCounters(t *testing.T) {
	s := stats.New()
	s.ObserveRequest("metrics", 200)

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `telebridge_requests_total{code="200",route="metrics"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := stats.New(), stats.New()
	a.ObserveRequest("auth", 401)
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Requests.WithLabelValues("auth", "401")))
}
