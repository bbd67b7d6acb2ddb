package dto

import (
	"time"

	"weezsync/internal/models/domain"
)

type EventResponse struct {
	EventID   int64  `json:"eventId"`
	Name      string `json:"name"`
	StartDate string `json:"startDate,omitempty"`
	Active    bool   `json:"active"`
}

type RegistrationResponse struct {
	EventID              int64    `json:"eventId"`
	Email                string   `json:"email"`
	LastName             string   `json:"lastName"`
	FirstName            string   `json:"firstName"`
	Phone                string   `json:"phone"`
	Address              string   `json:"address"`
	City                 string   `json:"city"`
	PostalCode           string   `json:"postalCode"`
	BirthDate            string   `json:"birthDate,omitempty"`
	SourceInfo           string   `json:"sourceInfo"`
	FinancingEligible    string   `json:"financingEligible"`
	DisabilityStatus     string   `json:"disabilityStatus"`
	AccommodationNeeded  string   `json:"accommodationNeeded"`
	AccommodationDetails string   `json:"accommodationDetails"`
	AmountPaid           *float64 `json:"amountPaid"`
	TicketName           string   `json:"ticketName"`
	PromoCodeUsed        bool     `json:"promoCodeUsed"`
	RegisteredAt         string   `json:"registeredAt,omitempty"`
}

type SyncStartedResponse struct {
	Status    string `json:"status"`
	RequestID string `json:"requestId,omitempty"`
}

type SyncStatusResponse struct {
	Running bool `json:"running"`
}

func MapDomainToEventResponse(e domain.Event) EventResponse {
	return EventResponse{
		EventID:   e.EventID,
		Name:      e.Name,
		StartDate: formatDate(e.StartDate),
		Active:    e.Active,
	}
}

func MapDomainToEventResponseList(events []domain.Event) []EventResponse {
	result := make([]EventResponse, len(events))
	for i, e := range events {
		result[i] = MapDomainToEventResponse(e)
	}
	return result
}

func MapDomainToRegistrationResponse(r domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		EventID:              r.EventID,
		Email:                r.Email,
		LastName:             r.LastName,
		FirstName:            r.FirstName,
		Phone:                r.Phone,
		Address:              r.Address,
		City:                 r.City,
		PostalCode:           r.PostalCode,
		BirthDate:            formatDate(r.BirthDate),
		SourceInfo:           r.SourceInfo,
		FinancingEligible:    r.FinancingEligible,
		DisabilityStatus:     r.DisabilityStatus,
		AccommodationNeeded:  r.AccommodationNeeded,
		AccommodationDetails: r.AccommodationDetails,
		AmountPaid:           r.AmountPaid,
		TicketName:           r.TicketName,
		PromoCodeUsed:        r.PromoCodeUsed,
		RegisteredAt:         formatDateTime(r.RegisteredAt),
	}
}

func MapDomainToRegistrationResponseList(regs []domain.Registration) []RegistrationResponse {
	result := make([]RegistrationResponse, len(regs))
	for i, r := range regs {
		result[i] = MapDomainToRegistrationResponse(r)
	}
	return result
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatDateTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02 15:04:05")
}
