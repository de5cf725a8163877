package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/klauspost/compress/gzip"

	"telebridge/internal/domain"
)

type HTTP struct {
	Base string
	HTTP *http.Client
}

func NewHTTP(base string, hc *http.Client) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// Handshake returns the bridge's public key.
func (c *HTTP) Handshake(ctx context.Context) (domain.X25519Public, error) {
	var out struct {
		PublicKey string `json:"public_key"`
	}
	if err := c.getJSON(ctx, "/api/v1/", &out); err != nil {
		return domain.X25519Public{}, err
	}
	return domain.ParseX25519Public(out.PublicKey)
}

// ChainAccess reports whether the bridge accepts chainID.
func (c *HTTP) ChainAccess(ctx context.Context, chainID string) (bool, error) {
	var ok bool
	if err := c.getJSON(ctx, "/api/v1/chain-access/"+url.PathEscape(chainID), &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// PushOptions tune PushMetrics.
type PushOptions struct {
	Gzip  bool
	Token string // sent as "Authorization: Bearer <token>" when set
}

// PushMetrics posts a Prometheus text payload to the ingest endpoint.
func (c *HTTP) PushMetrics(ctx context.Context, payload []byte, opts PushOptions) error {
	body := payload
	if opts.Gzip {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(payload); err != nil {
			return err
		}
		if err := zw.Close(); err != nil {
			return err
		}
		body = buf.Bytes()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/api/v1/ingest/metrics", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "text/plain")
	if opts.Gzip {
		req.Header.Set("Content-Encoding", "gzip")
	}
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(req, &out); err != nil {
		return err
	}
	if out.Status != "ok" {
		return fmt.Errorf("relay post /api/v1/ingest/metrics: unexpected status %q", out.Status)
	}
	return nil
}

func (c *HTTP) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTP) do(req *http.Request, out any) error {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("relay %s %s: %s", strings.ToLower(req.Method), req.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
