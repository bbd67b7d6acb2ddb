package domain

import "time"

// Event is the domain model of an upstream event. EventID is the Weezevent
// identifier and the persistence key. StartDate holds only the date part and
// is nil when the upstream value was absent or unparseable. Active is false
// only for cancelled events.
type Event struct {
	EventID   int64
	Name      string
	StartDate *time.Time
	Active    bool
}

// Registration is one person's signup for one event, keyed by
// (Email, EventID). The upstream participant id is used only while fetching
// and is not part of the model.
type Registration struct {
	EventID   int64
	Email     string
	LastName  string
	FirstName string
	Phone     string
	Address   string
	City      string
	PostalCode string
	BirthDate *time.Time

	SourceInfo        string
	FinancingEligible string
	DisabilityStatus  string

	// AccommodationNeeded is "Oui", "Non" or empty when the answer was
	// absent. AccommodationDetails is set only when needed is "Oui".
	AccommodationNeeded  string
	AccommodationDetails string

	AmountPaid    *float64
	TicketName    string
	PromoCodeUsed bool
	RegisteredAt  *time.Time
}
