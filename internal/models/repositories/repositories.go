package repositories

import "time"

type Event struct {
	EventID   int64      `db:"event_id"`
	Name      string     `db:"name"`
	Date      *time.Time `db:"date"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

type Registration struct {
	ID         int64      `db:"id"`
	Email      string     `db:"email"`
	EventID    int64      `db:"event_id"`
	LastName   string     `db:"last_name"`
	FirstName  string     `db:"first_name"`
	Phone      string     `db:"phone"`
	Address    string     `db:"address"`
	City       string     `db:"city"`
	PostalCode string     `db:"postal_code"`
	BirthDate  *time.Time `db:"birth_date"`

	SourceInfo        string `db:"source_info"`
	FinancingEligible string `db:"financing_eligible"`
	DisabilityStatus  string `db:"disability_status"`

	AccommodationNeeded  string `db:"accommodation_needed"`
	AccommodationDetails string `db:"accommodation_details"`

	AmountPaid   *float64   `db:"amount_paid"`
	TicketName   string     `db:"ticket_name"`
	PromoCode    bool       `db:"promo_code"`
	RegisteredAt *time.Time `db:"registered_at"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
