// Package server is the HTTP API behind the browser app. It samples paths,
// builds tube meshes, and encodes and decodes share links.
package server

import (
	"context"
	"errors"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/cloudy-native/lucid"
	"github.com/cloudy-native/lucid/cache"
	"github.com/cloudy-native/lucid/path"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "server",
})

// Options configure a Server. The zero value is usable: it has no cache,
// and registers metrics with a private registry.
type Options struct {
	Cache          cache.Cache
	DefaultSamples int
	MaxSamples     int

	// BaseURL is the page which share links point at.
	BaseURL string

	// Registry receives the server's metrics, and is what /metrics serves.
	Registry *prometheus.Registry

	// Seed returns the seed for a random configuration when the request
	// doesn't give one.
	Seed func() uint64
}

type Server struct {
	opts    Options
	traces  *cache.Traces
	metrics *Metrics
}

func New(o Options) *Server {
	if o.MaxSamples <= 0 || o.MaxSamples > path.MaxSamples {
		o.MaxSamples = path.MaxSamples
	}

	if o.DefaultSamples <= 0 {
		o.DefaultSamples = path.DefaultSamples
	}
	o.DefaultSamples = path.ClampSamples(o.DefaultSamples, o.MaxSamples)

	if o.BaseURL == "" {
		o.BaseURL = "https://lucidgeometry.com/"
	}

	if o.Registry == nil {
		o.Registry = prometheus.NewRegistry()
	}

	if o.Seed == nil {
		o.Seed = rand.Uint64
	}

	return &Server{
		opts:    o,
		traces:  cache.NewTraces(o.Cache),
		metrics: NewMetrics(o.Registry),
	}
}

// Handler returns the router for every endpoint.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Get("/health", s.health)
	r.Get("/info", s.info)

	r.Get("/path", s.getPath)
	r.Post("/path", s.postPath)
	r.Get("/path.obj", s.getPathOBJ)

	r.Post("/share", s.postShare)
	r.Get("/share/{code}", s.getShare)

	r.Get("/random", s.getRandom)
	r.Get("/presets", s.presets)
	r.Get("/docs", s.docs)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))

	return r
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err

	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// trace samples a configuration through the cache, and records metrics.
func (s *Server) trace(ctx context.Context, c lucid.Configuration, n int) (*path.Result, error) {
	start := time.Now()
	r, hit, err := s.traces.Trace(ctx, c, n)
	s.metrics.ComputeTime.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.PathsComputed.WithLabelValues("error").Inc()
		return nil, err
	}

	if hit {
		s.metrics.CacheLookups.WithLabelValues("hit").Inc()
	} else {
		s.metrics.CacheLookups.WithLabelValues("miss").Inc()
		s.metrics.PathsComputed.WithLabelValues("ok").Inc()
	}

	return r, nil
}
