package crypto

import (
	"encoding/base64"
	"fmt"
	"io"
)

// SecretBytes is the size of a bearer-token signing secret.
const SecretBytes = 32

// NewSigningSecret reads SecretBytes from r.
func NewSigningSecret(r io.Reader) ([]byte, error) {
	s := make([]byte, SecretBytes)
	if _, err := io.ReadFull(r, s); err != nil {
		return nil, fmt.Errorf("signing secret entropy: %w", err)
	}
	return s, nil
}

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }
