package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"weezsync/internal/transport/httpServer/handlers/dto"
	"weezsync/internal/utils"
	"weezsync/internal/utils/logger/sl"

	"github.com/go-chi/chi/v5"
)

type EventHandler struct {
	repository EventRepository
	log        *slog.Logger
}

func NewEventHandler(log *slog.Logger, repo EventRepository) *EventHandler {
	return &EventHandler{
		repository: repo,
		log:        log,
	}
}

// GetEvents handles GET /api/v1/events and returns every persisted event.
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.GetEvents()"
	log := h.log.With(slog.String("op", op))

	events, err := h.repository.ReadAllEvents(r.Context())
	if err != nil {
		h.respondError(log, fmt.Errorf("failed to get events: %w", err), w, http.StatusInternalServerError)
		return
	}

	response := dto.MapDomainToEventResponseList(events)

	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

// GetRegistrations handles GET /api/v1/events/{eventId}/registrations and
// returns the participant list of one event for downstream reporting.
func (h *EventHandler) GetRegistrations(w http.ResponseWriter, r *http.Request) {
	op := "httpServer.handlers.EventHandler.GetRegistrations()"
	log := h.log.With(slog.String("op", op))

	rawID := chi.URLParam(r, "eventId")
	eventID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.respondError(log, fmt.Errorf("invalid eventId %q: %w", rawID, err), w, http.StatusBadRequest)
		return
	}

	regs, err := h.repository.FindRegistrationsByEvent(r.Context(), eventID)
	if err != nil {
		h.respondError(log, fmt.Errorf("failed to get registrations: %w", err), w, http.StatusInternalServerError)
		return
	}

	response := dto.MapDomainToRegistrationResponseList(regs)

	if err := utils.Json(w, http.StatusOK, response); err != nil {
		log.Error("error encoding response", sl.Err(err))
	}
}

func (h *EventHandler) respondError(log *slog.Logger, err error, w http.ResponseWriter, status int) {
	log.Error("handler error", sl.Err(err))
	if httpErr := utils.Err(w, status, err); httpErr != nil {
		log.Error("error sending http response", sl.Err(httpErr))
	}
}
