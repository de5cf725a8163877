// Package bridge is the relay dispatcher: it impersonates a node telemetry
// service well enough for a node to hand over its Prometheus metrics, and
// relays those metrics to a push gateway.
//
// HTTP API
//
//	GET /api/v1/
//	    Handshake. Returns {"public_key": "<64 hex chars>"} for the bridge
//	    identity. The key never changes for the life of the process.
//
//	GET /api/v1/chain-access/{chain_id}
//	    Chain-access check. Always returns the literal body true, whatever
//	    the id (including an empty one).
//
//	POST /api/v1/ingest/metrics
//	    Reads Content-Length bytes, gunzips them when Content-Encoding is
//	    gzip, and pushes the result unchanged to the gateway. Replies
//	    {"status":"ok"} once the gateway answered with any status; replies
//	    500 with an empty body on a bad gzip stream (nothing is forwarded)
//	    or when the gateway cannot be reached.
//
//	POST /api/v1/auth
//	    Always fails: 401 for the static identity, 500 for the generated
//	    one, with a JSON {"code", "message"} body. The body is parsed for
//	    logging only.
//
//	POST /api/v1/ingest/custom-event, POST /api/v1/ingest/logs
//	    Accepted and dropped: {"status":"ok"}.
//
// Anything else is acknowledged with 200 (an empty body for GET and other
// methods, {"status":"ok"} for POST) so the node's fallback logic never
// trips over the bridge.
//
// Behaviour
//
//   - Routing is a fixed table matched on method and URL path, first match
//     wins and exact paths precede prefixes (see Match).
//   - Bearer tokens on ingest requests are inspected for logs, never checked.
//   - One forwarding attempt per payload, bounded by the forwarder timeout.
//     A node hanging up does not cancel a push already in flight.
//   - Nothing is persisted.
package bridge
