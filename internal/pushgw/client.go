package pushgw

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"telebridge/internal/domain"
)

const (
	DefaultTimeout = 10 * time.Second
	// snippetBytes bounds how much of a gateway reply is kept for logging.
	snippetBytes = 512
)

// Config locates the push gateway.
type Config struct {
	Host    string
	Port    int
	Job     string
	Timeout time.Duration
	HTTP    *http.Client // optional; built from Timeout when nil
}

// Client is a domain.Forwarder talking to one push gateway job.
type Client struct {
	URL     string
	Timeout time.Duration
	HTTP    *http.Client
}

var _ domain.Forwarder = (*Client)(nil)

// JobURL builds the push endpoint for cfg.
func JobURL(host string, port int, job string) string {
	u := url.URL{
		Scheme: "http",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/metrics/job/" + job,
	}
	u.RawPath = "/metrics/job/" + url.PathEscape(job)
	return u.String()
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := cfg.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{
		URL:     JobURL(cfg.Host, cfg.Port, cfg.Job),
		Timeout: timeout,
		HTTP:    hc,
	}
}

// Push posts payload as text/plain.
func (c *Client) Push(ctx context.Context, payload []byte) (domain.PushResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return domain.PushResult{}, fmt.Errorf("pushgw post %s: %w", c.URL, err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.PushResult{}, fmt.Errorf("pushgw post %s: %w", c.URL, err)
	}
	defer resp.Body.Close()

	snippet, err := io.ReadAll(io.LimitReader(resp.Body, snippetBytes))
	if err != nil {
		// The status line already arrived; a broken reply body is not a
		// transport failure for the relay.
		snippet = nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	return domain.PushResult{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       string(snippet),
	}, nil
}
