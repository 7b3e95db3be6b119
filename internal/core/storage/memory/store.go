package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
)

// Store is an in-memory implementation of storage.EventStore and storage.AccountStore.
// Useful for testing and development.
type Store struct {
	mu            sync.RWMutex
	events        map[int64]*v1.Event
	accounts      map[int64]*v1.Account
	accountsEmail map[string]int64
	nextEventID   int64
	nextAccountID int64
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		events:        make(map[int64]*v1.Event),
		accounts:      make(map[int64]*v1.Account),
		accountsEmail: make(map[string]int64),
	}
}

func (s *Store) CreateEvent(ctx context.Context, event *v1.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextEventID++
	event.ID = s.nextEventID
	s.events[event.ID] = copyEvent(event)
	return nil
}

func (s *Store) FindEvent(ctx context.Context, id int64) (*v1.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	evt, ok := s.events[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyEvent(evt), nil
}

func (s *Store) ListEvents(ctx context.Context, offset, limit int, order storage.Sort) ([]*v1.Event, int64, error) {
	s.mu.RLock()
	all := make([]*v1.Event, 0, len(s.events))
	for _, evt := range s.events {
		all = append(all, copyEvent(evt))
	}
	s.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		c := compareEvents(all[i], all[j], order.Field)
		if c == 0 {
			return all[i].ID < all[j].ID
		}
		if order.Desc {
			return c > 0
		}
		return c < 0
	})

	total := int64(len(all))
	if offset < 0 || offset >= len(all) {
		return []*v1.Event{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

// UpdateEvent replaces the stored event. The stored manager is kept.
func (s *Store) UpdateEvent(ctx context.Context, event *v1.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.events[event.ID]
	if !ok {
		return storage.ErrNotFound
	}

	updated := copyEvent(event)
	updated.Manager = existing.Manager
	s.events[event.ID] = updated
	return nil
}

func (s *Store) SaveAccount(ctx context.Context, account *v1.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accountsEmail[account.Email]; exists {
		return storage.ErrDuplicate
	}

	s.nextAccountID++
	account.ID = s.nextAccountID
	s.accounts[account.ID] = copyAccount(account)
	s.accountsEmail[account.Email] = account.ID
	return nil
}

func (s *Store) FindAccountByEmail(ctx context.Context, email string) (*v1.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.accountsEmail[email]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyAccount(s.accounts[id]), nil
}

func (s *Store) FindAccountByID(ctx context.Context, id int64) (*v1.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return copyAccount(acc), nil
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return nil
}

func (s *Store) Close() error {
	return nil
}

func compareEvents(a, b *v1.Event, field string) int {
	switch field {
	case storage.SortByName:
		return strings.Compare(a.Name, b.Name)
	case storage.SortByBeginEventDateTime:
		return compareTimes(a.BeginEventDateTime, b.BeginEventDateTime)
	default:
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	}
}

func compareTimes(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	}
	return 0
}

func copyEvent(e *v1.Event) *v1.Event {
	c := *e
	if e.Location != nil {
		loc := *e.Location
		c.Location = &loc
	}
	if e.Manager != nil {
		m := *e.Manager
		c.Manager = &m
	}
	return &c
}

func copyAccount(a *v1.Account) *v1.Account {
	c := *a
	c.Roles = append([]v1.AccountRole(nil), a.Roles...)
	return &c
}
