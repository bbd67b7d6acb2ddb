package normalize

import (
	"log/slog"
	"strconv"
	"strings"
)

// ResolveAmount decides the amount paid for a registration.
//
// primary is the raw value of the configured final-price field, nil when the
// field is not configured or absent from the record. A present primary value
// is authoritative: if it fails to parse the amount is nil and the base-price
// fallback is NOT consulted. Only when the primary yields nothing at all is
// the ticket id looked up in the base-price index. When neither resolves the
// amount is nil.
func ResolveAmount(log *slog.Logger, primary *string, ticketID string, prices map[string]float64) *float64 {
	if primary != nil {
		return ParseAmount(log, *primary)
	}

	if ticketID == "" {
		log.Warn("ticket id missing, amount will be null")
		return nil
	}

	if base, ok := prices[ticketID]; ok {
		return &base
	}

	log.Warn("no base price for ticket, amount will be null", slog.String("ticketId", ticketID))
	return nil
}

// ParseAmount parses a decimal amount, accepting a comma as decimal
// separator. An empty value yields nil silently, an unparseable one yields
// nil with a warning.
func ParseAmount(log *slog.Logger, raw string) *float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
	if cleaned == "" {
		return nil
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		log.Warn("cannot parse amount, will be null", slog.String("value", raw))
		return nil
	}
	return &v
}
