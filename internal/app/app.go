package app

import (
	"context"

	"go.uber.org/zap"

	"telebridge/internal/discovery"
)

type App struct {
	Config Config
	Wire   *Wire
	Log    *zap.Logger
}

// New validates cfg and wires the bridge.
func New(cfg Config, log *zap.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w, err := NewWire(cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{Config: cfg, Wire: w, Log: log}, nil
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	id := a.Wire.Identity
	fields := []zap.Field{
		zap.Stringer("variant", id.Variant()),
		zap.String("public_key", id.PublicKeyHex()),
		zap.String("fingerprint", id.Fingerprint()),
		zap.String("gateway", a.Config.GatewayURL()),
		zap.Duration("timeout", a.Config.Timeout),
	}
	if id.HasSecret() {
		fields = append(fields, zap.String("jwt_secret_prefix", id.SecretPreview(20)+"..."))
	}
	a.Log.Info("starting telemetry bridge", fields...)

	if a.Config.MDNS {
		if adv, err := a.advertise(); err != nil {
			a.Log.Warn("mdns advertisement disabled", zap.Error(err))
		} else {
			defer adv.Close()
			a.Log.Info("advertising over mdns", zap.String("service", discovery.ServiceType), zap.Int("port", adv.Port()))
		}
	}

	err := a.Wire.Server.Run(ctx)
	a.Log.Info("shutting down bridge")
	return err
}

func (a *App) advertise() (*discovery.Advertiser, error) {
	port, err := discovery.PortOf(a.Config.Listen)
	if err != nil {
		return nil, err
	}
	return discovery.Advertise("telebridge-"+a.Wire.Identity.Fingerprint()[:8], port)
}
