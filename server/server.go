package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/theoremus-urban-solutions/itinerary-view/config"
	"github.com/theoremus-urban-solutions/itinerary-view/formatter"
	"github.com/theoremus-urban-solutions/itinerary-view/tripquery"
)

const shutdownTimeout = 10 * time.Second

// Server serves rendered itinerary lists
type Server struct {
	cfg     config.AppConfig
	log     *zap.Logger
	builder *formatter.ResponseBuilder
	client  *tripquery.Client
}

// New creates a server from the application configuration
func New(cfg config.AppConfig, log *zap.Logger) *Server {
	return &Server{
		cfg:     cfg,
		log:     log,
		builder: formatter.NewResponseBuilder().WithPDFFont(cfg.View.PDFFontPath),
		client:  tripquery.NewClient(time.Duration(cfg.OTP.TimeoutMS) * time.Millisecond),
	}
}

// Handler returns the routed handler wrapped in request id and logging middleware
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/itineraries.html", s.handleItineraries(formatter.FormatHTML))
	mux.HandleFunc("/api/itineraries.json", s.handleItineraries(formatter.FormatJSON))
	mux.HandleFunc("/api/itineraries.txt", s.handleItineraries(formatter.FormatText))
	mux.HandleFunc("/api/itineraries.pdf", s.handleItineraries(formatter.FormatPDF))
	return requestID(logRequests(s.log, mux))
}

// Run listens on the configured port until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       time.Duration(s.cfg.Server.ReadTimeoutMS) * time.Millisecond,
		WriteTimeout:      time.Duration(s.cfg.Server.WriteTimeoutMS) * time.Millisecond,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.log.Info("server listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		s.log.Info("shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		s.log.Info("server shut down successfully")
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
