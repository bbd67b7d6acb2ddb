package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"weezsync/internal/config"
	"weezsync/internal/graceful"
	"weezsync/internal/repositories"
	"weezsync/internal/singleflight"
	"weezsync/internal/syncer"
	"weezsync/internal/transport/httpServer"
	"weezsync/internal/transport/httpServer/handlers"
	"weezsync/internal/transport/httpServer/routers"
	"weezsync/internal/utils/logger/handlers/slogpretty"
	"weezsync/internal/weezevent"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

var Version = "0.1"

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info(
		"starting weezevent sync service",
		slog.String("env", cfg.Env),
		slog.String("version", Version),
	)

	repositoryService := repositories.New(log, cfg)
	weezeventClient := weezevent.NewClient(log, cfg)
	coordinator := singleflight.NewCoordinator()
	syncerService := syncer.New(log, cfg, weezeventClient, repositoryService, coordinator)

	// HTTP Server
	eventHandler := handlers.NewEventHandler(log, repositoryService)
	syncHandler := handlers.NewSyncHandler(log, syncerService)
	router := routers.NewRouter(log, cfg.HttpServer.Secret, eventHandler, syncHandler)
	httpSrv := httpServer.NewHttpServer(log, router, cfg)

	maxSecond := 15 * time.Second
	waitShutdown := graceful.GracefulShutdown(
		context.Background(),
		maxSecond,
		map[string]graceful.Operation{
			"Repository service": func(ctx context.Context) error {
				return repositoryService.Shutdown(ctx)
			},
			"HTTP server": func(ctx context.Context) error {
				return httpSrv.Shutdown(ctx)
			},
		},
		log,
	)

	go httpSrv.Listen()

	<-waitShutdown
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default: // If env config is invalid, set prod settings by default due to security
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(os.Stdout)

	return slog.New(handler)
}
