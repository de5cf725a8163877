package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"telebridge/internal/bridge"
	"telebridge/internal/logging"
	"telebridge/internal/stats"
)

// HeaderRequestID carries the per-request id on responses.
const HeaderRequestID = "X-Request-Id"

// requestLogger tags each request with a fresh id, stores a child logger in
// the context, and writes one access-log line once the handler returns.
func requestLogger(base *zap.Logger, st *stats.Stats) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set(HeaderRequestID, id)

			log := base.With(
				zap.String("request_id", id),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(logging.WithLogger(r.Context(), log)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := bridge.Match(r.Method, r.URL.Path)
			if st != nil {
				st.ObserveRequest(string(route), status)
			}
			log.Debug("request",
				zap.String("remote", r.RemoteAddr),
				zap.Int("status", status),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)))
		})
	}
}
