// Package crypto exposes the few primitives the bridge identity needs.
//
// Contents
//
//   - X25519 key generation with RFC 7748 clamping (GenerateX25519)
//   - Random bearer-token signing secrets (NewSigningSecret)
//   - Short public-key fingerprints for logs (Fingerprint)
//   - Best-effort wiping of scratch buffers (Wipe)
//
// Every generator takes an io.Reader so tests can feed deterministic entropy.
// Production callers pass crypto/rand.Reader.
package crypto
