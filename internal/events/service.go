package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
	"github.com/eventdesk-lab/eventdesk/internal/metrics"
)

// ErrNotManager is returned when a caller updates an event they do not manage.
var ErrNotManager = errors.New("caller is not the event manager")

const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

// PageRequest selects one zero-based page of events.
type PageRequest struct {
	Page int
	Size int
	Sort storage.Sort
}

// Page is one page of events plus the paging totals.
type Page struct {
	Items         []*v1.Event
	Number        int
	Size          int
	TotalElements int64
}

// Service implements the event use cases on top of an EventStore.
type Service struct {
	store     storage.EventStore
	validator *Validator
	metrics   *metrics.Metrics
}

func NewService(store storage.EventStore, validator *Validator, m *metrics.Metrics) *Service {
	if store == nil {
		panic("events: store must not be nil")
	}
	if validator == nil {
		panic("events: validator must not be nil")
	}
	return &Service{store: store, validator: validator, metrics: m}
}

// CreateEvent validates req, maps it onto a new DRAFT event managed by
// manager, derives the flags and persists it. Validation failures are
// returned as *validation.Errors.
func (s *Service) CreateEvent(ctx context.Context, req *v1.EventRequest, manager *v1.Account) (*v1.Event, error) {
	if errs := s.validator.ValidateRequest(req); errs.HasErrors() {
		return nil, errs
	}

	event := req.NewEvent()
	event.Update()
	event.SetManager(manager)

	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.metrics.EventCreated()
	slog.Info("Event created",
		"event_id", event.ID,
		"free", event.Free,
		"offline", event.Offline,
		"manager_id", managerID(event))
	return event, nil
}

// QueryEvents returns one page of events. Out-of-range sizes are clamped.
func (s *Service) QueryEvents(ctx context.Context, req PageRequest) (*Page, error) {
	if req.Page < 0 {
		req.Page = 0
	}
	if req.Size <= 0 {
		req.Size = DefaultPageSize
	}
	if req.Size > MaxPageSize {
		req.Size = MaxPageSize
	}
	if req.Page > math.MaxInt/req.Size {
		req.Page = math.MaxInt / req.Size
	}

	items, total, err := s.store.ListEvents(ctx, req.Page*req.Size, req.Size, req.Sort)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return &Page{
		Items:         items,
		Number:        req.Page,
		Size:          req.Size,
		TotalElements: total,
	}, nil
}

// GetEvent loads one event. Returns storage.ErrNotFound if it does not exist.
func (s *Service) GetEvent(ctx context.Context, id int64) (*v1.Event, error) {
	return s.store.FindEvent(ctx, id)
}

// UpdateEvent overwrites the mutable fields of event id with req.
//
// Checks run in order: existence (storage.ErrNotFound), input validation
// (*validation.Errors), then ownership (ErrNotManager). Nothing is written
// unless all three pass.
func (s *Service) UpdateEvent(ctx context.Context, id int64, req *v1.EventRequest, caller *v1.Account) (*v1.Event, error) {
	event, err := s.store.FindEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if errs := s.validator.ValidateRequest(req); errs.HasErrors() {
		return nil, errs
	}

	if !event.IsManagedBy(caller) {
		slog.Warn("Rejected event update from non-manager",
			"event_id", id,
			"manager_id", managerID(event),
			"caller_id", accountID(caller))
		return nil, ErrNotManager
	}

	req.ApplyTo(event)
	event.Update()

	if err := s.store.UpdateEvent(ctx, event); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update event %d: %w", id, err)
	}

	slog.Info("Event updated", "event_id", id, "free", event.Free, "offline", event.Offline)
	return event, nil
}

func managerID(e *v1.Event) int64 {
	if e.Manager == nil {
		return 0
	}
	return e.Manager.ID
}

func accountID(a *v1.Account) int64 {
	if a == nil {
		return 0
	}
	return a.ID
}
