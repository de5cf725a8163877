package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"telebridge/internal/bridge"
	"telebridge/internal/domain"
	"telebridge/internal/logging"
	"telebridge/internal/pushgw"
)

// Config holds runtime options for building the bridge.
type Config struct {
	Listen        string // node-facing address, e.g. :8011
	MetricsListen string // bridge self-metrics address; empty disables

	GatewayHost string        // push gateway host, e.g. localhost
	GatewayPort int           // push gateway port, e.g. 9091
	Job         string        // push gateway job name
	Timeout     time.Duration // bound on each push

	Variant         domain.Variant
	MaxPayloadBytes int64 // cap on a decompressed payload; negative disables
	MDNS            bool  // advertise over mDNS

	LogLevel  string
	LogFormat string

	HTTP *http.Client // optional outbound client; built from Timeout when nil
}

// DefaultConfig returns the defaults, overridden by TELEBRIDGE_* variables.
func DefaultConfig() Config {
	return Config{
		Listen:          env("LISTEN", ":8011"),
		MetricsListen:   env("METRICS_LISTEN", ""),
		GatewayHost:     env("GATEWAY_HOST", "localhost"),
		GatewayPort:     envInt("GATEWAY_PORT", 9091),
		Job:             env("JOB", "aptos_validator"),
		Timeout:         envDuration("TIMEOUT", pushgw.DefaultTimeout),
		Variant:         domain.Variant(env("VARIANT", string(domain.VariantStatic))),
		MaxPayloadBytes: envInt64("MAX_PAYLOAD_BYTES", bridge.DefaultMaxPayloadBytes),
		MDNS:            envBool("MDNS", false),
		LogLevel:        env("LOG_LEVEL", "info"),
		LogFormat:       env("LOG_FORMAT", logging.FormatConsole),
	}
}

// Validate normalizes the variant and rejects unusable settings.
func (c *Config) Validate() error {
	var errs []error
	if c.Listen == "" {
		errs = append(errs, errors.New("listen address required"))
	}
	if c.GatewayHost == "" {
		errs = append(errs, errors.New("gateway host required"))
	}
	if c.GatewayPort <= 0 || c.GatewayPort > 65535 {
		errs = append(errs, fmt.Errorf("gateway port %d out of range", c.GatewayPort))
	}
	if c.Job == "" {
		errs = append(errs, errors.New("job name required"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be positive, got %s", c.Timeout))
	}
	v, err := domain.ParseVariant(string(c.Variant))
	if err != nil {
		errs = append(errs, err)
	} else {
		c.Variant = v
	}
	return errors.Join(errs...)
}

// GatewayURL is where payloads are pushed.
func (c Config) GatewayURL() string {
	return pushgw.JobURL(c.GatewayHost, c.GatewayPort, c.Job)
}
