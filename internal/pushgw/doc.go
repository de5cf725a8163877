// Package pushgw forwards metrics payloads to a Prometheus push gateway.
//
// Each Push is a single POST of the payload, unchanged, to
//
//	http://<host>:<port>/metrics/job/<job>
//
// with Content-Type text/plain. The call is bounded by the configured timeout
// and never retried. A reply with any status code is a PushResult; only
// transport failures (refused connection, DNS, timeout) are returned as errors.
package pushgw
