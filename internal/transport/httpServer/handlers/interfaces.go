package handlers

import (
	"context"

	"weezsync/internal/models/domain"

	"github.com/google/uuid"
)

// EventRepository is the read side of the store used by the reporting
// handlers.
type EventRepository interface {
	ReadAllEvents(ctx context.Context) ([]domain.Event, error)
	FindRegistrationsByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error)
}

// SyncService triggers and observes sync runs.
type SyncService interface {
	TriggerSync() (uuid.UUID, bool)
	IsRunning() bool
}
