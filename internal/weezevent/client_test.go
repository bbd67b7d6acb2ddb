package weezevent

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"weezsync/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		WeezeventConfig: config.WeezeventConfig{
			BaseURL:            baseURL,
			ApiKey:             "key",
			Username:           "user",
			Password:           "pass",
			CancelledStatusID:  4,
			TokenTimeout:       2 * time.Second,
			EventsTimeout:      2 * time.Second,
			TicketsTimeout:     2 * time.Second,
			ParticipantTimeout: 2 * time.Second,
			AnswersTimeout:     2 * time.Second,
		},
	}
}

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	return NewClient(discardLogger(), testConfig(baseURL))
}
