package domain

// AuthRequest is the subset of a node's auth request body the bridge logs.
// Every field is optional; nothing here is verified.
type AuthRequest struct {
	ChainID  any    `json:"chain_id"`
	PeerID   string `json:"peer_id"`
	RoleType string `json:"role_type"`
}

// AuthFailure is the JSON body of a synthetic auth rejection.
type AuthFailure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
