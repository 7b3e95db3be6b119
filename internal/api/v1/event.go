package v1

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Prices go over the wire as JSON numbers, the same form requests use.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EventStatus is the lifecycle state of an Event.
type EventStatus string

const (
	StatusDraft            EventStatus = "DRAFT"
	StatusPublished        EventStatus = "PUBLISHED"
	StatusBeganEnrollment  EventStatus = "BEGAN_ENROLLMENT"
	StatusClosedEnrollment EventStatus = "CLOSED_ENROLLMENT"
	StatusStarted          EventStatus = "STARTED"
	StatusEnded            EventStatus = "ENDED"
)

// Valid reports whether s is one of the known lifecycle states.
func (s EventStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusBeganEnrollment,
		StatusClosedEnrollment, StatusStarted, StatusEnded:
		return true
	}
	return false
}

// AccountRef is the serialized form of an event's manager.
// Only the identifier leaves the service.
type AccountRef struct {
	ID int64 `json:"id"`
}

// Event is a schedulable item with enrollment and occurrence windows,
// pricing and an optional physical location.
type Event struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	BeginEnrollmentDateTime time.Time `json:"beginEnrollmentDateTime"`
	CloseEnrollmentDateTime time.Time `json:"closeEnrollmentDateTime"`
	BeginEventDateTime      time.Time `json:"beginEventDateTime"`
	EndEventDateTime        time.Time `json:"endEventDateTime"`

	// Location is nil for online-only events.
	Location          *string         `json:"location"`
	BasePrice         decimal.Decimal `json:"basePrice"`
	MaxPrice          decimal.Decimal `json:"maxPrice"`
	LimitOfEnrollment int             `json:"limitOfEnrollment"`

	// Offline and Free are derived by Update. They are never taken from client input.
	Offline bool `json:"offline"`
	Free    bool `json:"free"`

	EventStatus EventStatus `json:"eventStatus"`

	// Manager is set once at creation and only compared afterwards.
	Manager *AccountRef `json:"manager,omitempty"`
}

// Update recomputes the derived Free and Offline flags from the current
// price and location fields. It must be called after every change to those
// fields; nothing recomputes them implicitly.
func (e *Event) Update() {
	e.Free = e.BasePrice.IsZero() && e.MaxPrice.IsZero()
	e.Offline = e.Location != nil && strings.TrimSpace(*e.Location) != ""
}

// IsManagedBy reports whether account is the recorded manager of the event.
func (e *Event) IsManagedBy(account *Account) bool {
	if e.Manager == nil || account == nil {
		return false
	}
	return e.Manager.ID == account.ID
}

// SetManager records account as the event's manager.
func (e *Event) SetManager(account *Account) {
	if account == nil {
		e.Manager = nil
		return
	}
	e.Manager = &AccountRef{ID: account.ID}
}
