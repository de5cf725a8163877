package identity

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"telebridge/internal/crypto"
	"telebridge/internal/domain"
)

// placeholderByte fills the static variant's public key ("aaaa...").
const placeholderByte = 0xaa

// Identity is the bridge's process-wide key material.
type Identity struct {
	variant domain.Variant
	public  domain.X25519Public

	// Held for the process lifetime and never transmitted: token issuance
	// is not implemented.
	private       domain.X25519Private
	signingSecret []byte
}

// Static returns the placeholder identity. It carries no secrets.
func Static() *Identity {
	var pub domain.X25519Public
	for i := range pub {
		pub[i] = placeholderByte
	}
	return &Identity{variant: domain.VariantStatic, public: pub}
}

// Generate creates a real X25519 key pair and signing secret from r.
func Generate(r io.Reader) (*Identity, error) {
	priv, pub, err := crypto.GenerateX25519(r)
	if err != nil {
		return nil, fmt.Errorf("generate identity: %w", err)
	}
	secret, err := crypto.NewSigningSecret(r)
	if err != nil {
		crypto.Wipe(priv[:])
		return nil, fmt.Errorf("generate identity: %w", err)
	}
	return &Identity{
		variant:       domain.VariantGenerated,
		public:        pub,
		private:       priv,
		signingSecret: secret,
	}, nil
}

// New builds the identity for v using crypto/rand.
func New(v domain.Variant) (*Identity, error) {
	switch v {
	case domain.VariantStatic:
		return Static(), nil
	case domain.VariantGenerated:
		return Generate(rand.Reader)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownVariant, v)
	}
}

func (id *Identity) Variant() domain.Variant        { return id.variant }
func (id *Identity) PublicKey() domain.X25519Public { return id.public }

// PublicKeyHex is the 64-char lowercase hex key served on the handshake.
func (id *Identity) PublicKeyHex() string { return id.public.Hex() }

// Fingerprint is a short digest of the public key for logs.
func (id *Identity) Fingerprint() string { return crypto.Fingerprint(id.public.Slice()) }

// HasSecret reports whether real secret material backs this identity.
func (id *Identity) HasSecret() bool { return len(id.signingSecret) > 0 }

// SecretPreview returns the first n characters of the base64 signing secret,
// for the start-up log only. Empty for the static variant.
func (id *Identity) SecretPreview(n int) string {
	if !id.HasSecret() {
		return ""
	}
	s := crypto.B64(id.signingSecret)
	if n < len(s) {
		s = s[:n]
	}
	return s
}

// String never includes secret material.
func (id *Identity) String() string {
	return fmt.Sprintf("identity{variant=%s public=%s}", id.variant, id.PublicKeyHex())
}

// MarshalJSON emits only public fields.
func (id *Identity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Variant   domain.Variant `json:"variant"`
		PublicKey string         `json:"public_key"`
	}{id.variant, id.PublicKeyHex()})
}
