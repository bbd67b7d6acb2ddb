package weezevent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Events fetches every event visible to the account.
func (c *Client) Events(ctx context.Context, token string) ([]Event, error) {
	op := "weezevent.Client.Events()"
	log := c.logger.With(slog.String("op", op))

	body, err := c.get(ctx, c.cfg.WeezeventConfig.EventsTimeout, "/events", c.authQuery(token))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var er eventsResponse
	if err := json.Unmarshal(body, &er); err != nil {
		return nil, fmt.Errorf("%s: cannot decode events response: %w", op, err)
	}

	log.Info("events received from API", slog.Int("count", len(er.Events)))

	return er.Events, nil
}
