package httpServer

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"weezsync/internal/config"
	"weezsync/internal/transport/httpServer/routers"
	"weezsync/internal/utils/logger/sl"

	"github.com/go-chi/chi/v5"
)

type HttpServer struct {
	logger *slog.Logger
	cfg    *config.Config
	server *http.Server
}

func NewHttpServer(logger *slog.Logger, router *routers.Router, cfg *config.Config) *HttpServer {
	op := "httpServer.NewHttpServer()"
	log := logger.With(slog.String("op", op))

	mux := chi.NewRouter()
	router.Mount(mux)

	addr := net.JoinHostPort(cfg.HttpServer.Address, cfg.HttpServer.Port)

	log.Info("Creating http server", slog.String("address", addr))

	return &HttpServer{
		logger: logger,
		cfg:    cfg,
		server: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  cfg.HttpServer.Timeout,
			WriteTimeout: cfg.HttpServer.Timeout,
		},
	}
}

// Listen serves until shutdown. Blocking; run it on its own goroutine.
func (s *HttpServer) Listen() {
	op := "httpServer.Listen()"
	log := s.logger.With(slog.String("op", op))

	log.Info("http server started", slog.String("address", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("http server stopped", sl.Err(err))
	}
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
