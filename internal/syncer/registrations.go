package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"weezsync/internal/models/domain"
	"weezsync/internal/normalize"
	"weezsync/internal/utils/logger/sl"
	"weezsync/internal/weezevent"
)

// Expected form labels, matched case-insensitively against the answer map.
// These are the questions of the live registration form; generic ones carry
// the spelling variants seen across forms.
const (
	labelPhone         = "telephone"
	labelPhoneAlt      = "portable"
	labelBirthDate     = "date de naissance"
	labelBirthDateAlt  = "date_de_naissance"
	labelAddress       = "adresse"
	labelCity          = "ville"
	labelPostalCode    = "code postal"
	labelPostalCodeAlt = "code_postal"

	labelSourceInfo    = "comment avez-vous entendu parler de la compagnie maritime ? (bouche à oreille, site, presse, réseaux sociaux, autres à préciser)."
	labelFinancing     = "êtes-vous éligible à un financement pour cette formation ?"
	labelDisability    = "bénéficiez-vous d'une rqth ?"
	labelAccommodation = "avez-vous besoin d'aménagements nécessaires pour facilité l'accès à la formation ? si oui, précisez"
)

// negativeAnswers are the values meaning "no accommodation needed".
var negativeAnswers = map[string]struct{}{
	"non":   {},
	"no":    {},
	"0":     {},
	"false": {},
	"aucun": {},
}

// syncRegistrations processes participants of every active and upcoming
// event read back from the store. EventSyncer must have run first in the
// same invocation so the filter sees fresh data.
func (s *Syncer) syncRegistrations(ctx context.Context, log *slog.Logger, token string) {
	eventIDs, err := s.repository.FindActiveUpcomingEventIDs(ctx)
	if err != nil {
		log.Error("cannot read active event ids, registration sync skipped", sl.Err(err))
		return
	}
	if len(eventIDs) == 0 {
		log.Info("no active upcoming events, registration sync skipped")
		return
	}

	prices := s.api.TicketPrices(ctx, token, eventIDs)
	if len(prices) == 0 {
		log.Warn("no ticket base prices collected, price fallback unavailable")
	}

	totalReceived := 0
	totalProcessed := 0

	for _, eventID := range eventIDs {
		participants, err := s.api.Participants(ctx, token, eventID)
		if err != nil {
			log.Error("cannot list participants, event skipped",
				slog.Int64("eventId", eventID),
				sl.Err(err),
			)
			continue
		}
		totalReceived += len(participants)

		processed := 0
		for i := range participants {
			if err := s.processParticipant(ctx, log, token, eventID, &participants[i], prices); err != nil {
				log.Warn("participant skipped",
					slog.Int64("eventId", eventID),
					sl.Err(err),
				)
				continue
			}
			processed++
		}
		totalProcessed += processed

		log.Info("event registrations synchronized",
			slog.Int64("eventId", eventID),
			slog.Int("processed", processed),
		)
	}

	log.Info("registrations synchronized",
		slog.Int("received", totalReceived),
		slog.Int("saved", totalProcessed),
	)
}

// processParticipant builds the normalized registration of one participant
// and persists it. Any error here aborts only this participant.
func (s *Syncer) processParticipant(
	ctx context.Context,
	log *slog.Logger,
	token string,
	eventID int64,
	p *weezevent.Participant,
	prices map[string]float64,
) error {
	participantID := strings.TrimSpace(p.IDParticipant.String())
	if participantID == "" {
		return fmt.Errorf("participant id missing (email %q)", fallbackEmail(p))
	}

	email := fallbackEmail(p)
	if email == "" {
		return fmt.Errorf("email missing for participant %s", participantID)
	}

	answers, err := s.api.Answers(ctx, token, participantID)
	if err != nil {
		return fmt.Errorf("cannot fetch answers for participant %s: %w", participantID, err)
	}

	reg := s.buildRegistration(log, eventID, email, p, answers, prices)

	if err := s.repository.UpsertRegistration(ctx, reg); err != nil {
		return fmt.Errorf("cannot save registration of participant %s: %w", participantID, err)
	}

	return nil
}

// fallbackEmail prefers the owner record's email and falls back to the
// top-level participant email, lowercased and trimmed.
func fallbackEmail(p *weezevent.Participant) string {
	email := strings.ToLower(strings.TrimSpace(p.Owner.Email))
	if email == "" {
		email = strings.ToLower(strings.TrimSpace(p.Email))
	}
	return email
}

// buildRegistration resolves every field through its declared priority table:
// form answer by expected label first, then the owner sub-record, then the
// top-level participant record.
func (s *Syncer) buildRegistration(
	log *slog.Logger,
	eventID int64,
	email string,
	p *weezevent.Participant,
	answers normalize.AnswerMap,
	prices map[string]float64,
) domain.Registration {
	lastName := normalize.Resolve(answers,
		normalize.Literal(p.Owner.LastName),
		normalize.Literal(p.LastName),
	)
	firstName := normalize.Resolve(answers,
		normalize.Literal(p.Owner.FirstName),
		normalize.Literal(p.FirstName),
	)
	phone := normalize.Resolve(answers,
		normalize.Label(labelPhone),
		normalize.Label(labelPhoneAlt),
		normalize.Literal(p.Owner.Phone.String()),
		normalize.Literal(p.Phone.String()),
	)
	birthDateRaw := normalize.Resolve(answers,
		normalize.Label(labelBirthDate),
		normalize.Label(labelBirthDateAlt),
		normalize.Literal(p.Owner.Birthdate),
		normalize.Literal(p.Birthdate),
	)
	address := normalize.Resolve(answers,
		normalize.Label(labelAddress),
		normalize.Literal(p.Owner.Address),
		normalize.Literal(p.Address),
	)
	city := normalize.Resolve(answers,
		normalize.Label(labelCity),
		normalize.Literal(p.Owner.City),
		normalize.Literal(p.City),
	)
	postalCode := normalize.Resolve(answers,
		normalize.Label(labelPostalCode),
		normalize.Label(labelPostalCodeAlt),
		normalize.Literal(p.Owner.Zipcode.String()),
		normalize.Literal(p.Zipcode.String()),
	)

	sourceInfo := normalize.Resolve(answers, normalize.Label(labelSourceInfo))
	financing := normalize.Resolve(answers, normalize.Label(labelFinancing))
	disability := normalize.Resolve(answers, normalize.Label(labelDisability))

	// The accommodation question combines yes/no and details in one answer:
	// a negative keyword means "Non" with no details, anything else non-empty
	// means "Oui" with the raw answer as details, absent leaves both unset.
	accommodationNeeded := ""
	accommodationDetails := ""
	if raw := normalize.Resolve(answers, normalize.Label(labelAccommodation)); raw != "" {
		if _, no := negativeAnswers[strings.ToLower(strings.TrimSpace(raw))]; no {
			accommodationNeeded = "Non"
		} else {
			accommodationNeeded = "Oui"
			accommodationDetails = raw
		}
	}

	ticketID := strings.TrimSpace(p.IDTicket.String())
	ticketName := strings.TrimSpace(p.TicketName)
	if ticketName == "" {
		ticketName = ticketID
	}
	if ticketName == "" {
		ticketName = "N/A"
	}

	var primary *string
	if field := s.cfg.WeezeventConfig.FinalPriceField; field != "" {
		if v, ok := p.RawField(field); ok {
			primary = &v
		}
	}
	amount := normalize.ResolveAmount(log, primary, ticketID, prices)

	return domain.Registration{
		EventID:              eventID,
		Email:                email,
		LastName:             lastName,
		FirstName:            firstName,
		Phone:                phone,
		Address:              address,
		City:                 city,
		PostalCode:           postalCode,
		BirthDate:            normalize.ParseDate(log, birthDateRaw),
		SourceInfo:           sourceInfo,
		FinancingEligible:    financing,
		DisabilityStatus:     disability,
		AccommodationNeeded:  accommodationNeeded,
		AccommodationDetails: accommodationDetails,
		AmountPaid:           amount,
		TicketName:           ticketName,
		PromoCodeUsed:        strings.TrimSpace(p.PromoCode.String()) != "",
		RegisteredAt:         normalize.ParseDateTime(log, p.CreateDate),
	}
}
