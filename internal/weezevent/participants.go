package weezevent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"weezsync/internal/normalize"
)

// Participants fetches the full participant list for one event. The whole
// list arrives in a single request; upstream pagination is not handled.
func (c *Client) Participants(ctx context.Context, token string, eventID int64) ([]Participant, error) {
	op := "weezevent.Client.Participants()"
	log := c.logger.With(slog.String("op", op), slog.Int64("eventId", eventID))

	q := c.authQuery(token)
	q.Add("id_event[]", strconv.FormatInt(eventID, 10))
	q.Set("full", "1")

	body, err := c.get(ctx, c.cfg.WeezeventConfig.ParticipantTimeout, "/participant/list", q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var pr participantsResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("%s: cannot decode participants response: %w", op, err)
	}

	log.Info("participants received from API", slog.Int("count", len(pr.Participants)))

	return pr.Participants, nil
}

// Answers fetches the form answers of one participant as an AnswerMap keyed
// by lower-cased, trimmed question label. A 404 means the participant has no
// answers and yields an empty map, not an error.
func (c *Client) Answers(ctx context.Context, token string, participantID string) (normalize.AnswerMap, error) {
	op := "weezevent.Client.Answers()"
	log := c.logger.With(slog.String("op", op), slog.String("participantId", participantID))

	body, err := c.get(ctx, c.cfg.WeezeventConfig.AnswersTimeout, "/participant/"+participantID+"/answers", c.authQuery(token))
	if err != nil {
		if errors.Is(err, errNotFound) {
			log.Warn("no answers found for participant")
			return normalize.AnswerMap{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var ar answersResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return nil, fmt.Errorf("%s: cannot decode answers response: %w", op, err)
	}

	answers := make(normalize.AnswerMap, len(ar.Answers))
	for _, a := range ar.Answers {
		label := strings.ToLower(strings.TrimSpace(a.Label))
		if label == "" {
			continue
		}
		answers[label] = a.Value.String()
	}

	return answers, nil
}
