package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGunzip_EmptyStaysEmpty(t *testing.T) {
	out, err := gunzip(nil, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGunzip_GarbageIsDecodeError(t *testing.T) {
	_, err := gunzip([]byte{0x1f, 0x8b, 0x00}, 0)
	assert.ErrorIs(t, err, ErrDecode)
}

func TestAuthPolicyFor(t *testing.T) {
	assert.Equal(t, 401, AuthPolicyFor("static").Status)
	assert.Equal(t, 500, AuthPolicyFor("generated").Status)
	assert.Equal(t, 401, AuthPolicyFor("static").Failure().Code)
}
