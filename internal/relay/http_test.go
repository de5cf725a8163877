package relay_test

import (
	"context"
	"crypto/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telebridge/internal/bridge"
	"telebridge/internal/domain"
	"telebridge/internal/identity"
	"telebridge/internal/relay"
)

type recordingForwarder struct{ got [][]byte }

func (f *recordingForwarder) Push(_ context.Context, p []byte) (domain.PushResult, error) {
	f.got = append(f.got, p)
	return domain.PushResult{StatusCode: 200}, nil
}

func startBridge(t *testing.T, id *identity.Identity) (*relay.HTTP, *recordingForwarder) {
	t.Helper()
	fwd := &recordingForwarder{}
	d, err := bridge.NewDispatcher(bridge.Options{Identity: id, Forwarder: fwd})
	require.NoError(t, err)
	srv := httptest.NewServer(d)
	t.Cleanup(srv.Close)
	return relay.NewHTTP(srv.URL+"/", srv.Client()), fwd
}

func TestHandshake_ReturnsBridgeKey(t *testing.T) {
	id, err := identity.Generate(rand.Reader)
	require.NoError(t, err)
	c, _ := startBridge(t, id)

	got, err := c.Handshake(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id.PublicKey(), got)
}

func TestChainAccess_True(t *testing.T) {
	c, _ := startBridge(t, identity.Static())
	ok, err := c.ChainAccess(context.Background(), "27")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPushMetrics_PlainAndGzip(t *testing.T) {
	c, fwd := startBridge(t, identity.Static())
	payload := []byte("aptos_connections 4\n")

	require.NoError(t, c.PushMetrics(context.Background(), payload, relay.PushOptions{}))
	require.NoError(t, c.PushMetrics(context.Background(), payload, relay.PushOptions{Gzip: true, Token: "t"}))

	require.Len(t, fwd.got, 2)
	assert.Equal(t, payload, fwd.got[0])
	assert.Equal(t, payload, fwd.got[1])
}

func TestNon2xx_IsError(t *testing.T) {
	srv := httptest.NewServer(bridgeDown{})
	defer srv.Close()
	_, err := relay.NewHTTP(srv.URL, nil).Handshake(context.Background())
	assert.ErrorContains(t, err, "500")
}

type bridgeDown struct{}

func (bridgeDown) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
}
