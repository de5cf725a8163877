// Package server runs the bridge's HTTP listeners: the node-facing API on the
// bridge port and, optionally, the bridge's own Prometheus endpoint on a
// separate address.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"telebridge/internal/stats"
)

const (
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 120 * time.Second
	shutdownTimeout   = 15 * time.Second
)

type Config struct {
	Addr        string
	MetricsAddr string // empty disables the metrics listener
}

type Server struct {
	cfg   Config
	log   *zap.Logger
	stats *stats.Stats
	api   http.Handler
}

// New wraps dispatcher with the middleware chain. dispatcher answers every
// path, so it is mounted as the catch-all.
func New(cfg Config, dispatcher http.Handler, st *stats.Stats, log *zap.Logger) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log, st))
	r.Handle("/*", dispatcher)
	r.NotFound(dispatcher.ServeHTTP)
	r.MethodNotAllowed(dispatcher.ServeHTTP)
	return &Server{cfg: cfg, log: log, stats: st, api: r}
}

// Handler is the node-facing API with middleware applied.
func (s *Server) Handler() http.Handler { return s.api }

// Run listens on the configured addresses until ctx is done, then shuts
// down gracefully. A bind failure is returned immediately.
func (s *Server) Run(ctx context.Context) error {
	apiLn, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	servers := []*http.Server{newHTTPServer(s.api)}
	listeners := []net.Listener{apiLn}

	if s.cfg.MetricsAddr != "" && s.stats != nil {
		mln, err := net.Listen("tcp", s.cfg.MetricsAddr)
		if err != nil {
			apiLn.Close()
			return fmt.Errorf("listen metrics %s: %w", s.cfg.MetricsAddr, err)
		}
		mux := chi.NewRouter()
		mux.Handle("/metrics", s.stats.Handler())
		servers = append(servers, newHTTPServer(mux))
		listeners = append(listeners, mln)
		s.log.Info("metrics listening", zap.String("addr", mln.Addr().String()))
	}

	s.log.Info("bridge listening", zap.String("addr", apiLn.Addr().String()))

	g, gctx := errgroup.WithContext(ctx)
	for i := range servers {
		srv, ln := servers[i], listeners[i]
		g.Go(func() error {
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		var errs []error
		for _, srv := range servers {
			errs = append(errs, srv.Shutdown(sctx))
		}
		return errors.Join(errs...)
	})
	return g.Wait()
}

func newHTTPServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
