package metrics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/andrescamacho/nationsim-go/internal/infrastructure/config"
)

const (
	// Namespace for all metrics
	namespace = "nationsim"
	// Subsystem for simulation metrics
	subsystem = "engine"
)

// NewRegistry creates a registry preloaded with the Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func register(registry prometheus.Registerer, metrics ...prometheus.Collector) error {
	if registry == nil {
		return nil // Metrics not enabled
	}
	for _, metric := range metrics {
		if err := registry.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// Server exposes a registry over HTTP for Prometheus to scrape
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the scrape endpoint described by cfg
func NewServer(cfg config.MetricsConfig, registry *prometheus.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	path := cfg.Path
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))

	return &Server{
		httpServer: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Addr is the address the server listens on
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start listens in the background. Bind errors are returned immediately.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	s.httpServer.Addr = listener.Addr().String()

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", "error", err)
		}
	}()
	s.logger.Info("metrics server listening", "addr", s.httpServer.Addr)
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
