package storage

import (
	"context"
	"errors"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an account with the same email already exists.
	ErrDuplicate = errors.New("record already exists")
)

// Sort orders event listings. Field is one of the SortBy constants.
type Sort struct {
	Field string
	Desc  bool
}

const (
	SortByID                 = "id"
	SortByName               = "name"
	SortByBeginEventDateTime = "beginEventDateTime"
)

// EventStore persists events.
type EventStore interface {
	// CreateEvent inserts event and populates its ID.
	CreateEvent(ctx context.Context, event *v1.Event) error

	FindEvent(ctx context.Context, id int64) (*v1.Event, error)

	// ListEvents returns one page of events plus the total number of events.
	ListEvents(ctx context.Context, offset, limit int, sort Sort) ([]*v1.Event, int64, error)

	// UpdateEvent overwrites every mutable column of an existing event.
	// Returns ErrNotFound if the event no longer exists.
	UpdateEvent(ctx context.Context, event *v1.Event) error
}

// AccountStore persists accounts.
type AccountStore interface {
	// SaveAccount inserts account and populates its ID.
	// Returns ErrDuplicate when the email is taken.
	SaveAccount(ctx context.Context, account *v1.Account) error

	FindAccountByEmail(ctx context.Context, email string) (*v1.Account, error)
	FindAccountByID(ctx context.Context, id int64) (*v1.Account, error)
}
