// Package identity produces the bridge's server identity once at start-up.
//
// The static variant serves a fixed placeholder key. The generated variant
// creates a genuine X25519 key pair and a random bearer-token signing secret.
// An Identity is immutable after construction and safe for concurrent reads.
// Only the public key ever leaves this package.
package identity
