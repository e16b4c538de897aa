package transit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/u0927156/MBTAProject/config"
	"github.com/u0927156/MBTAProject/formatter"
	"github.com/u0927156/MBTAProject/internal/clock"
	"github.com/u0927156/MBTAProject/internal/logging"
	"github.com/u0927156/MBTAProject/metrics"
)

// Server exposes a Planner over HTTP.
type Server struct {
	Planner *Planner
	Metrics *metrics.Metrics
	Clock   clock.Clock

	port       int
	builder    *formatter.ResponseBuilder
	httpServer *http.Server
	logger     *slog.Logger
}

func NewServer(p *Planner, m *metrics.Metrics, cfg config.ServerConfig) *Server {
	return &Server{
		Planner: p,
		Metrics: m,
		Clock:   clock.RealClock{},
		port:    cfg.Port,
		builder: formatter.NewResponseBuilder(),
		logger:  logging.Component("server"),
	}
}

// Handler returns the routed handler wrapped in request-id and metrics
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/route.json", s.handleRoute(formatJSON))
	mux.HandleFunc("GET /api/route.xml", s.handleRoute(formatXML))
	mux.HandleFunc("GET /api/report.json", s.handleReport(formatJSON))
	mux.HandleFunc("GET /api/report.xml", s.handleReport(formatXML))
	mux.HandleFunc("GET /api/lines.json", s.handleLines)
	mux.HandleFunc("GET /api/stops.json", s.handleStops)
	mux.HandleFunc("GET /api/nearest-stop.json", s.handleNearestStop)
	if s.Metrics != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))
	}
	return RequestIDMiddleware(MetricsMiddleware(s.Metrics, s.logger, mux))
}

// Start begins serving in the background and returns once the listener is
// bound.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.LogError(s.logger, "Server error", err)
		}
	}()
	s.logger.Info("server listening", slog.String("addr", ln.Addr().String()))
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// HandleGracefulShutdown blocks until SIGINT or SIGTERM, then shuts the
// server down.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	s.logger.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logging.LogError(s.logger, "Server shutdown error", err)
	} else {
		s.logger.Info("server shut down successfully")
	}
}

func (s *Server) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}
