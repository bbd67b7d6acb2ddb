package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"weezsync/internal/models/domain"
	"weezsync/internal/models/repositories"
)

// UpsertRegistration inserts a registration or, on (email, event_id)
// conflict, overwrites every mutable field with the latest values. One
// transaction per call; a failure rolls back only this record.
func (r *Repository) UpsertRegistration(ctx context.Context, reg domain.Registration) error {
	op := "repository.UpsertRegistration()"
	log := r.logger.With(
		slog.String("op", op),
		slog.String("email", reg.Email),
		slog.Int64("eventId", reg.EventID),
	)

	row := mapRegistrationToRepo(reg)

	query := `INSERT INTO registrations (
			email, event_id, last_name, first_name, phone, address, city, postal_code,
			birth_date, source_info, financing_eligible, disability_status,
			accommodation_needed, accommodation_details, amount_paid, ticket_name,
			promo_code, registered_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12,
			$13, $14, $15, $16,
			$17, $18, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
		)
		ON CONFLICT (email, event_id) DO UPDATE SET
			last_name = EXCLUDED.last_name,
			first_name = EXCLUDED.first_name,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			postal_code = EXCLUDED.postal_code,
			birth_date = EXCLUDED.birth_date,
			source_info = EXCLUDED.source_info,
			financing_eligible = EXCLUDED.financing_eligible,
			disability_status = EXCLUDED.disability_status,
			accommodation_needed = EXCLUDED.accommodation_needed,
			accommodation_details = EXCLUDED.accommodation_details,
			amount_paid = EXCLUDED.amount_paid,
			ticket_name = EXCLUDED.ticket_name,
			promo_code = EXCLUDED.promo_code,
			registered_at = EXCLUDED.registered_at,
			updated_at = CURRENT_TIMESTAMP
		RETURNING (xmax = 0) AS inserted`

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var inserted bool
	err = tx.QueryRowContext(ctx, query,
		row.Email,
		row.EventID,
		row.LastName,
		row.FirstName,
		row.Phone,
		row.Address,
		row.City,
		row.PostalCode,
		row.BirthDate,
		row.SourceInfo,
		row.FinancingEligible,
		row.DisabilityStatus,
		row.AccommodationNeeded,
		row.AccommodationDetails,
		row.AmountPaid,
		row.TicketName,
		row.PromoCode,
		row.RegisteredAt,
	).Scan(&inserted)
	if err != nil {
		_ = tx.Rollback()
		log.Error("registration upsert failed",
			slog.String("lastName", row.LastName),
			slog.String("firstName", row.FirstName),
			slog.String("ticketName", row.TicketName),
		)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%s: commit: %w", op, err)
	}

	if inserted {
		log.Info("registration inserted")
	} else {
		log.Info("registration updated")
	}

	return nil
}

// FindRegistrationsByEvent returns every registration of one event, ordered
// by last name then first name, for downstream reporting.
func (r *Repository) FindRegistrationsByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error) {
	op := "repository.FindRegistrationsByEvent()"

	query := `SELECT id, email, event_id, last_name, first_name, phone, address, city, postal_code,
			birth_date, source_info, financing_eligible, disability_status,
			accommodation_needed, accommodation_details, amount_paid, ticket_name,
			promo_code, registered_at, created_at, updated_at
		FROM registrations WHERE event_id = $1
		ORDER BY last_name ASC, first_name ASC`

	var rows []repositories.Registration
	if err := r.DB.SelectContext(ctx, &rows, query, eventID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := make([]domain.Registration, len(rows))
	for i, row := range rows {
		result[i] = mapRegistrationToDomain(row)
	}

	return result, nil
}

func mapRegistrationToRepo(reg domain.Registration) repositories.Registration {
	return repositories.Registration{
		Email:                reg.Email,
		EventID:              reg.EventID,
		LastName:             reg.LastName,
		FirstName:            reg.FirstName,
		Phone:                reg.Phone,
		Address:              reg.Address,
		City:                 reg.City,
		PostalCode:           reg.PostalCode,
		BirthDate:            reg.BirthDate,
		SourceInfo:           reg.SourceInfo,
		FinancingEligible:    reg.FinancingEligible,
		DisabilityStatus:     reg.DisabilityStatus,
		AccommodationNeeded:  reg.AccommodationNeeded,
		AccommodationDetails: reg.AccommodationDetails,
		AmountPaid:           reg.AmountPaid,
		TicketName:           reg.TicketName,
		PromoCode:            reg.PromoCodeUsed,
		RegisteredAt:         reg.RegisteredAt,
	}
}

func mapRegistrationToDomain(row repositories.Registration) domain.Registration {
	return domain.Registration{
		Email:                row.Email,
		EventID:              row.EventID,
		LastName:             row.LastName,
		FirstName:            row.FirstName,
		Phone:                row.Phone,
		Address:              row.Address,
		City:                 row.City,
		PostalCode:           row.PostalCode,
		BirthDate:            row.BirthDate,
		SourceInfo:           row.SourceInfo,
		FinancingEligible:    row.FinancingEligible,
		DisabilityStatus:     row.DisabilityStatus,
		AccommodationNeeded:  row.AccommodationNeeded,
		AccommodationDetails: row.AccommodationDetails,
		AmountPaid:           row.AmountPaid,
		TicketName:           row.TicketName,
		PromoCodeUsed:        row.PromoCode,
		RegisteredAt:         row.RegisteredAt,
	}
}
