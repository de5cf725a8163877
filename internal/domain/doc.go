// Package domain holds the shared types and interfaces of the telemetry bridge:
// key material, the identity variant, the push gateway contract and the
// request shapes the bridge inspects for diagnostics.
package domain
