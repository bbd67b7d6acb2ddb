package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weezsync/internal/models/domain"
	"weezsync/internal/models/repositories"
)

// UpsertEvent inserts an event or, on event id conflict, overwrites name,
// date and active with the latest upstream values. One transaction per call.
func (r *Repository) UpsertEvent(ctx context.Context, event domain.Event) error {
	op := "repository.UpsertEvent()"
	log := r.logger.With(slog.String("op", op), slog.Int64("eventId", event.EventID))

	repoEvent := mapEventToRepo(event)

	query := `INSERT INTO events (event_id, name, date, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		ON CONFLICT (event_id) DO UPDATE SET
			name = EXCLUDED.name,
			date = EXCLUDED.date,
			active = EXCLUDED.active,
			updated_at = CURRENT_TIMESTAMP
		RETURNING (xmax = 0) AS inserted`

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var inserted bool
	err = tx.QueryRowContext(ctx, query,
		repoEvent.EventID,
		repoEvent.Name,
		repoEvent.Date,
		repoEvent.Active,
	).Scan(&inserted)
	if err != nil {
		_ = tx.Rollback()
		log.Error("event upsert failed",
			slog.String("name", repoEvent.Name),
			slog.Bool("active", repoEvent.Active),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	if inserted {
		log.Debug("event inserted", slog.String("name", repoEvent.Name))
	} else {
		log.Debug("event updated", slog.String("name", repoEvent.Name))
	}

	return nil
}

// FindActiveUpcomingEventIDs returns ids of events that are active (not
// cancelled) and either undated or starting today or later. These are the
// candidates for registration sync.
func (r *Repository) FindActiveUpcomingEventIDs(ctx context.Context) ([]int64, error) {
	op := "repository.FindActiveUpcomingEventIDs()"

	query := `SELECT event_id, date FROM events WHERE active = TRUE`

	var rows []repositories.Event
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return upcomingEventIDs(rows, time.Now()), nil
}

// upcomingEventIDs keeps the active-event rows still counting as upcoming on
// the given day: an undated event always does, a dated one only from its
// start date on. Day precision in UTC, matching the DATE column.
func upcomingEventIDs(rows []repositories.Event, today time.Time) []int64 {
	y, m, d := today.UTC().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		if row.Date != nil && row.Date.Before(midnight) {
			continue
		}
		ids = append(ids, row.EventID)
	}

	return ids
}

// ReadAllEvents returns every persisted event, most recent first.
func (r *Repository) ReadAllEvents(ctx context.Context) ([]domain.Event, error) {
	op := "repository.ReadAllEvents()"

	query := `SELECT event_id, name, date, active, created_at, updated_at
	          FROM events ORDER BY date DESC NULLS LAST, name ASC`

	var repoEvents []repositories.Event
	if err := r.DB.SelectContext(ctx, &repoEvents, query); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]domain.Event, len(repoEvents))
	for i, e := range repoEvents {
		result[i] = mapEventToDomain(e)
	}

	return result, nil
}

func mapEventToRepo(e domain.Event) repositories.Event {
	return repositories.Event{
		EventID: e.EventID,
		Name:    e.Name,
		Date:    e.StartDate,
		Active:  e.Active,
	}
}

func mapEventToDomain(e repositories.Event) domain.Event {
	return domain.Event{
		EventID:   e.EventID,
		Name:      e.Name,
		StartDate: e.Date,
		Active:    e.Active,
	}
}
