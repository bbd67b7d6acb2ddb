package weezevent

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"weezsync/internal/utils/logger/sl"
)

// TicketPrices bulk-fetches ticket definitions for the given events and
// flattens them into a ticket id → base price index. The index is used only
// as a pricing fallback, so any transport or decode failure yields an empty
// index instead of an error.
//
// Flattening is depth-first: tickets attached to a node are visited before
// its categories children, siblings in response order. The first price seen
// for a ticket id wins; the same id deeper in the tree does not overwrite it.
func (c *Client) TicketPrices(ctx context.Context, token string, eventIDs []int64) map[string]float64 {
	op := "weezevent.Client.TicketPrices()"
	log := c.logger.With(slog.String("op", op))

	prices := make(map[string]float64)

	if len(eventIDs) == 0 {
		log.Warn("no event ids given, skipping ticket prices fetch")
		return prices
	}

	q := c.authQuery(token)
	for _, id := range eventIDs {
		q.Add("id_event[]", strconv.FormatInt(id, 10))
	}

	body, err := c.get(ctx, c.cfg.WeezeventConfig.TicketsTimeout, "/tickets", q)
	if err != nil {
		log.Error("tickets request failed, price fallback unavailable", sl.Err(err))
		return prices
	}

	var tr ticketsResponse
	if err := json.Unmarshal(body, &tr); err == nil && tr.Events != nil {
		flattenTickets(tr.Events, prices)
	} else {
		// Some responses are a bare list of groups instead of {events: [...]}.
		var groups []ticketGroup
		if err := json.Unmarshal(body, &groups); err != nil {
			log.Error("cannot decode tickets response, price fallback unavailable", sl.Err(err))
			return prices
		}
		flattenTickets(groups, prices)
	}

	log.Info("ticket base prices collected", slog.Int("count", len(prices)))

	return prices
}

func flattenTickets(groups []ticketGroup, prices map[string]float64) {
	for _, g := range groups {
		for _, t := range g.Tickets {
			id := strings.TrimSpace(t.ID.String())
			if id == "" || t.Price == nil {
				continue
			}
			if _, seen := prices[id]; !seen {
				prices[id] = float64(*t.Price)
			}
		}
		flattenTickets(g.Categories, prices)
	}
}
