package routers

import (
	"log/slog"

	"weezsync/internal/transport/httpServer/handlers"
	myMiddleware "weezsync/internal/transport/httpServer/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Router struct {
	log          *slog.Logger
	secret       string
	eventHandler *handlers.EventHandler
	syncHandler  *handlers.SyncHandler
}

func NewRouter(
	log *slog.Logger,
	secret string,
	eventHandler *handlers.EventHandler,
	syncHandler *handlers.SyncHandler,
) *Router {
	return &Router{
		log:          log,
		secret:       secret,
		eventHandler: eventHandler,
		syncHandler:  syncHandler,
	}
}

func (r *Router) Mount(mux *chi.Mux) {

	mux.Use(cors.AllowAll().Handler)
	mux.Use(middleware.RequestID)
	mux.Use(myMiddleware.NewLogger(r.log))
	mux.Use(middleware.Heartbeat("/ping"))

	mux.Route("/api", func(mux chi.Router) {
		mux.Route("/v1", func(mux chi.Router) {
			mux.Use(myMiddleware.NewAuth(r.log, r.secret))

			mux.Route("/sync", func(mux chi.Router) {
				mux.Post("/", r.syncHandler.StartSync)
				mux.Get("/status", r.syncHandler.GetStatus)
			})

			mux.Route("/events", func(mux chi.Router) {
				mux.Get("/", r.eventHandler.GetEvents)
				mux.Get("/{eventId}/registrations", r.eventHandler.GetRegistrations)
			})
		})
	})
}
