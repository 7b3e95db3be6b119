package v1

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventRequest is the client-supplied payload for creating or updating an event.
// It carries only the mutable attributes; identifiers, status, manager and the
// derived flags cannot be set through it.
type EventRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`

	BeginEnrollmentDateTime time.Time `json:"beginEnrollmentDateTime" binding:"required"`
	CloseEnrollmentDateTime time.Time `json:"closeEnrollmentDateTime" binding:"required"`
	BeginEventDateTime      time.Time `json:"beginEventDateTime" binding:"required"`
	EndEventDateTime        time.Time `json:"endEventDateTime" binding:"required"`

	Location          *string         `json:"location"`
	BasePrice         decimal.Decimal `json:"basePrice"`
	MaxPrice          decimal.Decimal `json:"maxPrice"`
	LimitOfEnrollment int             `json:"limitOfEnrollment" binding:"min=0"`
}

// NewEvent maps the request onto a fresh DRAFT event. Derived flags are left
// unset; callers run Update after mapping.
func (r *EventRequest) NewEvent() *Event {
	e := &Event{EventStatus: StatusDraft}
	r.ApplyTo(e)
	return e
}

// ApplyTo overwrites the mutable attributes of e with the request values.
func (r *EventRequest) ApplyTo(e *Event) {
	e.Name = r.Name
	e.Description = r.Description
	e.BeginEnrollmentDateTime = r.BeginEnrollmentDateTime
	e.CloseEnrollmentDateTime = r.CloseEnrollmentDateTime
	e.BeginEventDateTime = r.BeginEventDateTime
	e.EndEventDateTime = r.EndEventDateTime
	e.Location = copyString(r.Location)
	e.BasePrice = r.BasePrice
	e.MaxPrice = r.MaxPrice
	e.LimitOfEnrollment = r.LimitOfEnrollment
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
