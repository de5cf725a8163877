package crypto

import (
	"fmt"
	"io"

	"golang.org/x/crypto/curve25519"

	"telebridge/internal/domain"
)

// GenerateX25519 returns a fresh Curve25519 key pair read from r.
// The private key is clamped per RFC 7748.
func GenerateX25519(r io.Reader) (priv domain.X25519Private, pub domain.X25519Public, err error) {
	if _, err = io.ReadFull(r, priv[:]); err != nil {
		return priv, pub, fmt.Errorf("x25519 entropy: %w", err)
	}
	clamp(&priv)
	pb, err := curve25519.X25519(priv.Slice(), curve25519.Basepoint)
	if err != nil {
		return priv, pub, fmt.Errorf("x25519 base mult: %w", err)
	}
	copy(pub[:], pb)
	return priv, pub, nil
}

func clamp(k *domain.X25519Private) {
	kb := k[:]
	kb[0] &= 248
	kb[31] &= 127
	kb[31] |= 64
}
