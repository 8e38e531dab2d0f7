package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	shim "github.com/heroku/cnb-shim"
	"github.com/heroku/cnb-shim/log"
)

//go:generate mockgen -package testmock -destination ../testmock/shimmer.go github.com/heroku/cnb-shim/server Shimmer
type Shimmer interface {
	Shim(namespace, name string, opts shim.Options) (*shim.Package, error)
}

const shutdownTimeout = 10 * time.Second

// Server serves the shim API over HTTP.
type Server struct {
	Addr    string
	Shimmer Shimmer
	Logger  log.Logger
}

func New(addr string, shimmer Shimmer, logger log.Logger) *Server {
	return &Server{Addr: addr, Shimmer: shimmer, Logger: logger}
}

// Handler builds the route table. Anything outside the two routes gets the
// fixed 404 failure.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Get("/health", s.health)
	r.Get("/v1/{namespace}/{name}", s.shim)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeFailure(w, http.StatusNotFound)
	})
	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully, waiting up to shutdownTimeout for in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.Addr, Handler: s.Handler()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.Logger.Infof("listening on %s", s.Addr)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
