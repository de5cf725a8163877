package app

import (
	"fmt"

	"go.uber.org/zap"

	"telebridge/internal/bridge"
	"telebridge/internal/identity"
	"telebridge/internal/pushgw"
	"telebridge/internal/server"
	"telebridge/internal/stats"
)

// Wire bundles the bridge's components.
type Wire struct {
	Identity   *identity.Identity
	Forwarder  *pushgw.Client
	Dispatcher *bridge.Dispatcher
	Stats      *stats.Stats
	Server     *server.Server
}

// NewWire constructs the dependency graph from cfg. cfg must be validated.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	// Generated once, then shared read-only by every request.
	id, err := identity.New(cfg.Variant)
	if err != nil {
		return nil, err
	}

	fwd := pushgw.New(pushgw.Config{
		Host:    cfg.GatewayHost,
		Port:    cfg.GatewayPort,
		Job:     cfg.Job,
		Timeout: cfg.Timeout,
		HTTP:    cfg.HTTP,
	})

	st := stats.New()
	d, err := bridge.NewDispatcher(bridge.Options{
		Identity:        id,
		Forwarder:       fwd,
		Logger:          log,
		Stats:           st,
		MaxPayloadBytes: cfg.MaxPayloadBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("dispatcher: %w", err)
	}

	srv := server.New(server.Config{Addr: cfg.Listen, MetricsAddr: cfg.MetricsListen}, d, st, log)

	return &Wire{
		Identity:   id,
		Forwarder:  fwd,
		Dispatcher: d,
		Stats:      st,
		Server:     srv,
	}, nil
}
