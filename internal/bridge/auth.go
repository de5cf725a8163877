package bridge

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"telebridge/internal/domain"
)

// AuthPolicy is the bridge's only authentication state: every attempt fails
// with a fixed status and message. There is no success path; the node's
// noise handshake is never carried out.
type AuthPolicy struct {
	Status  int
	Message string
}

var (
	staticAuth = AuthPolicy{
		Status:  http.StatusUnauthorized,
		Message: "Authentication not supported in bridge mode",
	}
	generatedAuth = AuthPolicy{
		Status:  http.StatusInternalServerError,
		Message: "Noise protocol authentication not implemented in bridge",
	}
)

// AuthPolicyFor returns the rejection served for an identity variant.
func AuthPolicyFor(v domain.Variant) AuthPolicy {
	if v == domain.VariantGenerated {
		return generatedAuth
	}
	return staticAuth
}

// Failure is the JSON body of the rejection.
func (p AuthPolicy) Failure() domain.AuthFailure {
	return domain.AuthFailure{Code: p.Status, Message: p.Message}
}

func (d *Dispatcher) rejectAuth(w http.ResponseWriter, r *http.Request, log *zap.Logger) {
	body, err := readBody(r)
	if err != nil {
		log.Warn("auth request body unreadable", zap.Error(err))
	} else {
		inspectAuth(body, log)
	}
	log.Info("rejecting authentication attempt",
		zap.Int("status", d.auth.Status),
		zap.String("reason", d.auth.Message))
	writeJSON(w, d.auth.Status, d.auth.Failure())
}

// inspectAuth logs what the node claims to be. Any parse failure is only logged.
func inspectAuth(body []byte, log *zap.Logger) {
	log.Debug("auth request received", zap.Int("bytes", len(body)))
	var req domain.AuthRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Debug("auth request is not JSON", zap.Error(err))
		return
	}
	log.Info("auth request",
		zap.Any("chain_id", req.ChainID),
		zap.String("peer_id", req.PeerID),
		zap.String("role", req.RoleType))
}

// bearerToken extracts the token of an "Authorization: Bearer" header.
func bearerToken(r *http.Request) (string, bool) {
	tok, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return tok, ok && tok != ""
}
