package bridge

import (
	"encoding/json"
	"net/http"
)

type handshakeResponse struct {
	PublicKey string `json:"public_key"`
}

type statusResponse struct {
	Status string `json:"status"`
}

var (
	okBody   = mustJSON(statusResponse{Status: "ok"})
	trueBody = []byte("true")
)

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	writeRaw(w, status, "application/json", mustJSON(v))
}

func writeRaw(w http.ResponseWriter, status int, contentType string, body []byte) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeOK(w http.ResponseWriter) {
	writeRaw(w, http.StatusOK, "application/json", okBody)
}

// writeEmpty answers with a status line and no body.
func writeEmpty(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Length", "0")
	w.WriteHeader(status)
}
