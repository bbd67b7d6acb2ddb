package syncer

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"weezsync/internal/config"
	"weezsync/internal/models/domain"
	"weezsync/internal/normalize"
	"weezsync/internal/singleflight"
	"weezsync/internal/utils/logger/sl"
	"weezsync/internal/weezevent"

	"github.com/google/uuid"
)

// API is the slice of the Weezevent client the syncer needs.
type API interface {
	AccessToken(ctx context.Context) (string, error)
	Events(ctx context.Context, token string) ([]weezevent.Event, error)
	Participants(ctx context.Context, token string, eventID int64) ([]weezevent.Participant, error)
	Answers(ctx context.Context, token string, participantID string) (normalize.AnswerMap, error)
	TicketPrices(ctx context.Context, token string, eventIDs []int64) map[string]float64
}

// Repository is the persistence gateway as seen by the syncer.
type Repository interface {
	UpsertEvent(ctx context.Context, event domain.Event) error
	FindActiveUpcomingEventIDs(ctx context.Context) ([]int64, error)
	UpsertRegistration(ctx context.Context, reg domain.Registration) error
}

// Syncer runs the whole pipeline: events first, then registrations for the
// active and upcoming events read back from the store. A run executes
// synchronously on one goroutine and never reports failure to its caller;
// everything recoverable is logged and isolated per event or participant.
type Syncer struct {
	logger      *slog.Logger
	cfg         *config.Config
	api         API
	repository  Repository
	coordinator *singleflight.Coordinator
}

// New creates a new Syncer.
func New(
	logger *slog.Logger,
	cfg *config.Config,
	api API,
	repository Repository,
	coordinator *singleflight.Coordinator,
) *Syncer {
	op := "Syncer.New()"
	log := logger.With(slog.String("op", op))
	log.Info("Creating syncer")

	return &Syncer{
		logger:      logger,
		cfg:         cfg,
		api:         api,
		repository:  repository,
		coordinator: coordinator,
	}
}

// TriggerSync starts a run in the background. It returns the run id and true
// when the run was started, or false when another run is already in flight.
// The coordinator slot is always released, also when the run panics.
func (s *Syncer) TriggerSync() (uuid.UUID, bool) {
	op := "Syncer.TriggerSync()"
	log := s.logger.With(slog.String("op", op))

	if !s.coordinator.TryStart() {
		log.Warn("sync already in progress, request rejected")
		return uuid.Nil, false
	}

	requestID := uuid.New()

	go func() {
		defer s.coordinator.Done()
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("sync run panicked",
					slog.String("requestID", requestID.String()),
					slog.Any("panic", rec),
				)
			}
		}()

		s.Run(context.Background(), requestID)
	}()

	return requestID, true
}

// IsRunning reports whether a run is currently in flight.
func (s *Syncer) IsRunning() bool {
	return s.coordinator.IsRunning()
}

// Run executes one full sync invocation. Only a missing token is fatal to
// the run; from there on every failure is scoped to one event or one
// participant.
func (s *Syncer) Run(ctx context.Context, requestID uuid.UUID) {
	op := "Syncer.Run()"
	log := s.logger.With(
		slog.String("op", op),
		slog.String("requestID", requestID.String()),
	)

	log.Info("sync run started")

	token, err := s.api.AccessToken(ctx)
	if err != nil {
		log.Error("cannot acquire access token, aborting run", sl.Err(err))
		return
	}

	s.syncEvents(ctx, log, token)
	s.syncRegistrations(ctx, log, token)

	log.Info("sync run finished")
}

// syncEvents fetches all upstream events, classifies them and upserts each
// one. An event without an id is skipped; a persistence failure skips only
// that event.
func (s *Syncer) syncEvents(ctx context.Context, log *slog.Logger, token string) {
	events, err := s.api.Events(ctx, token)
	if err != nil {
		log.Error("cannot list events, event sync skipped", sl.Err(err))
		return
	}

	processed := 0
	for _, e := range events {
		id, err := strconv.ParseInt(strings.TrimSpace(e.ID.String()), 10, 64)
		if err != nil {
			log.Warn("event without usable id skipped", slog.String("name", e.Name))
			continue
		}

		// Missing or non-numeric status parses to 0, which never equals
		// the cancelled code: only an explicit cancellation deactivates.
		statusID, _ := strconv.Atoi(e.SalesStatus.IDStatus.String())
		active := statusID != s.cfg.WeezeventConfig.CancelledStatusID

		event := domain.Event{
			EventID:   id,
			Name:      e.Name,
			StartDate: eventStartDate(log, e.Date.Start),
			Active:    active,
		}

		if err := s.repository.UpsertEvent(ctx, event); err != nil {
			log.Error("cannot save event, skipped",
				slog.Int64("eventId", id),
				sl.Err(err),
			)
			continue
		}
		processed++
	}

	log.Info("events synchronized",
		slog.Int("received", len(events)),
		slog.Int("saved", processed),
	)
}

// eventStartDate keeps only the date portion of the raw start value (the API
// sends "YYYY-MM-DD HH:MM:SS" or an ISO 'T' form) and parses it best-effort.
// Missing or unparseable input yields nil, not an error.
func eventStartDate(log *slog.Logger, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	datePart := raw
	if i := strings.IndexAny(raw, " T"); i >= 0 {
		datePart = raw[:i]
	}
	return normalize.ParseDate(log, datePart)
}
