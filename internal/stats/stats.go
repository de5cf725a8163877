// Package stats instruments the bridge itself. Collectors live on a private
// registry so tests and multiple bridges in one process do not collide.
package stats

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Failure reasons for RelayFailures.
const (
	ReasonRead      = "read"
	ReasonDecode    = "decode"
	ReasonTransport = "transport"
)

// Byte counter stages for RelayBytes.
const (
	StageReceived  = "received"
	StageForwarded = "forwarded"
)

type Stats struct {
	Registry *prometheus.Registry

	Requests         *prometheus.CounterVec
	RelayBytes       *prometheus.CounterVec
	RelayFailures    *prometheus.CounterVec
	GatewayResponses *prometheus.CounterVec
	ForwardDuration  prometheus.Histogram
}

func New() *Stats {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Stats{
		Registry: reg,
		Requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telebridge_requests_total",
				Help: "Requests handled, by route and response code",
			},
			[]string{"route", "code"},
		),
		RelayBytes: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telebridge_relay_bytes_total",
				Help: "Metrics payload bytes received from nodes and forwarded to the push gateway",
			},
			[]string{"stage"},
		),
		RelayFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telebridge_relay_failures_total",
				Help: "Metrics relays answered with 500, by reason",
			},
			[]string{"reason"},
		),
		GatewayResponses: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "telebridge_gateway_responses_total",
				Help: "Push gateway replies, by status code",
			},
			[]string{"code"},
		),
		ForwardDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "telebridge_forward_duration_seconds",
				Help:    "Time spent pushing a payload to the gateway",
				Buckets: prometheus.DefBuckets,
			},
		),
	}
}

// ObserveRequest counts one finished request.
func (s *Stats) ObserveRequest(route string, code int) {
	s.Requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// ObserveForward records one push attempt. code is 0 on transport failure.
func (s *Stats) ObserveForward(took time.Duration, code int) {
	s.ForwardDuration.Observe(took.Seconds())
	if code == 0 {
		s.RelayFailures.WithLabelValues(ReasonTransport).Inc()
		return
	}
	s.GatewayResponses.WithLabelValues(strconv.Itoa(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (s *Stats) Handler() http.Handler {
	return promhttp.HandlerFor(s.Registry, promhttp.HandlerOpts{Registry: s.Registry})
}
