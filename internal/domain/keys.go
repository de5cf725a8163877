package domain

import (
	"encoding/hex"
	"fmt"
)

// KeySize is the length of an X25519 key in bytes.
const KeySize = 32

// X25519Private is a Curve25519 private scalar.
type X25519Private [KeySize]byte

// X25519Public is a Curve25519 public key.
type X25519Public [KeySize]byte

func (k X25519Private) Slice() []byte { return k[:] }
func (k X25519Public) Slice() []byte  { return k[:] }

// Hex returns the lowercase hex encoding (64 chars).
func (k X25519Public) Hex() string { return hex.EncodeToString(k[:]) }

// ParseX25519Public decodes a 64-char hex public key.
func ParseX25519Public(s string) (X25519Public, error) {
	var out X25519Public
	b, err := hex.DecodeString(s)
	if err != nil {
		return out, fmt.Errorf("public key: %w", err)
	}
	if len(b) != KeySize {
		return out, fmt.Errorf("public key: want %d bytes, got %d", KeySize, len(b))
	}
	copy(out[:], b)
	return out, nil
}
