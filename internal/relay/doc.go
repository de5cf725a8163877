// Package relay is an HTTP client for a running telemetry bridge, speaking
// the node side of the bridge API.
//
// Supported operations:
//   - Fetching the bridge's handshake public key.
//   - Asking whether a chain id is accepted.
//   - Pushing a metrics payload, optionally gzip-compressed, with an optional
//     bearer token.
//
// The probe command uses it to check a deployment end to end. Every call
// accepts a context for cancellation and deadlines. Non-2xx statuses are
// returned as errors carrying the method, path and status text.
package relay
