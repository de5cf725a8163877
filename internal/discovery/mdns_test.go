package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telebridge/internal/discovery"
)

func TestPortOf(t *testing.T) {
	p, err := discovery.PortOf(":8011")
	require.NoError(t, err)
	assert.Equal(t, 8011, p)

	p, err = discovery.PortOf("127.0.0.1:9000")
	require.NoError(t, err)
	assert.Equal(t, 9000, p)

	_, err = discovery.PortOf("nope")
	assert.Error(t, err)
	_, err = discovery.PortOf(":http")
	assert.Error(t, err)
}

func TestAdvertise_RejectsBadPort(t *testing.T) {
	_, err := discovery.Advertise("bridge", 0)
	assert.Error(t, err)
	_, err = discovery.Advertise("bridge", 70000)
	assert.Error(t, err)
}
