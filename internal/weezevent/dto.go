package weezevent

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexString accepts a JSON string, number, bool or null. The Weezevent API
// is loosely typed and switches between strings and numbers for ids, phone
// numbers and zip codes depending on the form.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FlexString(strconv.FormatBool(b))
		return nil
	}

	return fmt.Errorf("expected string, number or bool, got %s", string(data))
}

func (f FlexString) String() string {
	return string(f)
}

// FlexFloat accepts a JSON number or a numeric string, tolerating a comma as
// decimal separator.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexFloat(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return fmt.Errorf("expected numeric string, got %q", s)
		}
		*f = FlexFloat(v)
		return nil
	}

	return fmt.Errorf("expected number, got %s", string(data))
}

// Event is one entry of the /events response.
type Event struct {
	ID          FlexString  `json:"id"`
	Name        string      `json:"name"`
	Date        EventDate   `json:"date"`
	SalesStatus SalesStatus `json:"sales_status"`
}

type EventDate struct {
	Start string `json:"start"`
}

type SalesStatus struct {
	IDStatus FlexString `json:"id_status"`
	Label    string     `json:"libelle_status"`
}

// Owner is the owner sub-record of a participant.
type Owner struct {
	LastName  string     `json:"last_name"`
	FirstName string     `json:"first_name"`
	Email     string     `json:"email"`
	Phone     FlexString `json:"phone"`
	Address   string     `json:"address"`
	City      string     `json:"city"`
	Zipcode   FlexString `json:"zipcode"`
	Birthdate string     `json:"birthdate"`
}

// Participant is one entry of the participant/list response. Besides the
// typed fields the raw object is kept so a configured final-price field can
// be looked up by name without assuming its position in the schema.
type Participant struct {
	IDParticipant FlexString `json:"id_participant"`
	LastName      string     `json:"last_name"`
	FirstName     string     `json:"first_name"`
	Email         string     `json:"email"`
	Phone         FlexString `json:"phone"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	Zipcode       FlexString `json:"zipcode"`
	Birthdate     string     `json:"birthdate"`
	Owner         Owner      `json:"owner"`
	PromoCode     FlexString `json:"promo_code"`
	CreateDate    string     `json:"create_date"`
	IDTicket      FlexString `json:"id_ticket"`
	TicketName    string     `json:"ticket_name"`

	raw map[string]json.RawMessage
}

func (p *Participant) UnmarshalJSON(data []byte) error {
	type alias Participant
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Participant(a)
	p.raw = raw
	return nil
}

// RawField looks up a top-level field of the raw participant object by name
// and returns its value as a string. A missing key or a JSON null reports
// ok = false, as do values that are not scalars.
func (p *Participant) RawField(key string) (string, bool) {
	msg, ok := p.raw[key]
	if !ok || string(msg) == "null" {
		return "", false
	}
	var v FlexString
	if err := json.Unmarshal(msg, &v); err != nil {
		return "", false
	}
	return v.String(), true
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

type eventsResponse struct {
	Events []Event `json:"events"`
}

type participantsResponse struct {
	Participants []Participant `json:"participants"`
}

type answersResponse struct {
	Answers []answer `json:"answers"`
}

type answer struct {
	Label string     `json:"label"`
	Value FlexString `json:"value"`
}

// ticketGroup is one node of the recursively nested /tickets response:
// every node may carry tickets directly and nest further groups under
// "categories" with the same shape.
type ticketGroup struct {
	Tickets    []ticket      `json:"tickets"`
	Categories []ticketGroup `json:"categories"`
}

type ticket struct {
	ID    FlexString `json:"id"`
	Price *FlexFloat `json:"price"`
}

type ticketsResponse struct {
	Events []ticketGroup `json:"events"`
}
