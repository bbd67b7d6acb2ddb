package normalize

import (
	"log/slog"
	"strings"
	"time"
)

var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
}

var dateTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// ParseDate parses a date-only value against the accepted layouts, first
// match wins. Empty or unparseable input yields nil; a rejected non-empty
// value is logged with the raw string.
func ParseDate(log *slog.Logger, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	log.Warn("unrecognized date format", slog.String("value", raw))
	return nil
}

// ParseDateTime parses a date-time value ("YYYY-MM-DD HH:MM:SS" or with a
// 'T' separator). Empty or unparseable input yields nil.
func ParseDateTime(log *slog.Logger, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}
	log.Warn("unrecognized datetime format", slog.String("value", raw))
	return nil
}
