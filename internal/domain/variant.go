package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects how the bridge's identity is produced and which synthetic
// failure the auth endpoint returns.
type Variant string

const (
	// VariantStatic serves a fixed placeholder public key.
	VariantStatic Variant = "static"
	// VariantGenerated serves a freshly generated X25519 public key and keeps
	// a bearer-token signing secret in memory.
	VariantGenerated Variant = "generated"
)

var ErrUnknownVariant = errors.New("unknown variant")

// ParseVariant accepts "static" or "generated" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(strings.ToLower(strings.TrimSpace(s))); v {
	case VariantStatic, VariantGenerated:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownVariant, s, VariantStatic, VariantGenerated)
	}
}

func (v Variant) String() string { return string(v) }
