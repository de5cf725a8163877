package bridge

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"telebridge/internal/domain"
	"telebridge/internal/identity"
	"telebridge/internal/logging"
	"telebridge/internal/stats"
)

// DefaultMaxPayloadBytes caps a decompressed metrics payload.
const DefaultMaxPayloadBytes = 64 << 20

// Options wires a Dispatcher.
type Options struct {
	Identity  *identity.Identity
	Forwarder domain.Forwarder
	Logger    *zap.Logger
	Stats     *stats.Stats // optional

	// MaxPayloadBytes bounds gzip inflation; 0 means DefaultMaxPayloadBytes,
	// negative disables the cap.
	MaxPayloadBytes int64
}

// Dispatcher routes node requests. It holds no mutable state and serves
// concurrent requests without locking.
type Dispatcher struct {
	id       *identity.Identity
	fwd      domain.Forwarder
	log      *zap.Logger
	stats    *stats.Stats
	auth     AuthPolicy
	maxBytes int64
}

var _ http.Handler = (*Dispatcher)(nil)

func NewDispatcher(opts Options) (*Dispatcher, error) {
	if opts.Identity == nil {
		return nil, errors.New("bridge: identity required")
	}
	if opts.Forwarder == nil {
		return nil, errors.New("bridge: forwarder required")
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	st := opts.Stats
	if st == nil {
		st = stats.New()
	}
	maxBytes := opts.MaxPayloadBytes
	if maxBytes == 0 {
		maxBytes = DefaultMaxPayloadBytes
	}
	return &Dispatcher{
		id:       opts.Identity,
		fwd:      opts.Forwarder,
		log:      log,
		stats:    st,
		auth:     AuthPolicyFor(opts.Identity.Variant()),
		maxBytes: maxBytes,
	}, nil
}

// AuthPolicy reports the rejection this dispatcher serves.
func (d *Dispatcher) AuthPolicy() AuthPolicy { return d.auth }

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := Match(r.Method, r.URL.Path)
	log := logging.FromContext(r.Context(), d.log).With(zap.String("route", string(route)))

	switch route {
	case RouteHandshake:
		log.Info("handshake", zap.String("public_key", d.id.PublicKeyHex()))
		writeJSON(w, http.StatusOK, handshakeResponse{PublicKey: d.id.PublicKeyHex()})

	case RouteChainAccess:
		log.Info("approved chain access", zap.String("chain_id", ChainID(r.URL.Path)))
		writeRaw(w, http.StatusOK, "application/json", trueBody)

	case RouteMetrics:
		d.relayMetrics(w, r, log)

	case RouteAuth:
		d.rejectAuth(w, r, log)

	case RouteCustomEvent, RouteLogs:
		n := discardBody(r)
		log.Info("ingest category ignored", zap.Int64("bytes", n))
		writeOK(w)

	case RouteUnknownPost:
		discardBody(r)
		log.Info("unknown POST endpoint", zap.String("path", r.URL.Path))
		writeOK(w)

	default:
		log.Info("unknown endpoint", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		writeEmpty(w, http.StatusOK)
	}
}
