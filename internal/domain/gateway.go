package domain

import "context"

// PushResult is what the push gateway answered. Any status, 2xx or not, is
// a result; only transport failures are errors.
type PushResult struct {
	StatusCode int
	Status     string
	// Body holds at most the first few hundred bytes of the reply.
	Body string
}

// OK reports a 2xx status.
func (r PushResult) OK() bool { return r.StatusCode/100 == 2 }

// Forwarder relays a decoded metrics payload downstream.
type Forwarder interface {
	Push(ctx context.Context, payload []byte) (PushResult, error)
}
