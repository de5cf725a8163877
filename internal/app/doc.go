// Package app wires the bridge's dependencies.
//
// It turns a Config into the server identity, the push gateway forwarder,
// the dispatcher, the stats registry and the HTTP server, exposing them via
// the Wire struct. App runs the wired graph until its context ends.
package app
