package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"weezsync/internal/models/repositories"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestUpcomingEventIDs(t *testing.T) {
	today := time.Date(2026, time.September, 1, 10, 30, 0, 0, time.UTC)

	t.Run("past start date excludes the event", func(t *testing.T) {
		rows := []repositories.Event{
			{EventID: 1, Date: datePtr(time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC))},
		}
		assert.Empty(t, upcomingEventIDs(rows, today))
	})

	t.Run("missing start date never excludes", func(t *testing.T) {
		rows := []repositories.Event{{EventID: 2}}
		assert.Equal(t, []int64{2}, upcomingEventIDs(rows, today))
	})

	t.Run("today and later count as upcoming", func(t *testing.T) {
		rows := []repositories.Event{
			{EventID: 3, Date: datePtr(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))},
			{EventID: 4, Date: datePtr(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))},
		}
		assert.Equal(t, []int64{3, 4}, upcomingEventIDs(rows, today))
	})

	t.Run("mixed rows keep response order", func(t *testing.T) {
		rows := []repositories.Event{
			{EventID: 1, Date: datePtr(time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC))},
			{EventID: 2},
			{EventID: 3, Date: datePtr(time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC))},
			{EventID: 4, Date: datePtr(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))},
		}
		assert.Equal(t, []int64{2, 3, 4}, upcomingEventIDs(rows, today))
	})

	t.Run("no rows yield no ids", func(t *testing.T) {
		assert.Empty(t, upcomingEventIDs(nil, today))
	})
}
