package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	v1 "github.com/eventdesk-lab/eventdesk/internal/api/v1"
	"github.com/eventdesk-lab/eventdesk/internal/core/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ storage.EventStore   = (*Store)(nil)
	_ storage.AccountStore = (*Store)(nil)
)

func newEvent(name string, begin time.Time) *v1.Event {
	loc := "Gangnam"
	return &v1.Event{
		Name:               name,
		BeginEventDateTime: begin,
		Location:           &loc,
		EventStatus:        v1.StatusDraft,
		Manager:            &v1.AccountRef{ID: 1},
	}
}

func TestStore_CreateAndFindEvent(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	evt := newEvent("first", time.Now())
	require.NoError(t, s.CreateEvent(ctx, evt))
	assert.Equal(t, int64(1), evt.ID)

	second := newEvent("second", time.Now())
	require.NoError(t, s.CreateEvent(ctx, second))
	assert.Equal(t, int64(2), second.ID)

	got, err := s.FindEvent(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	_, err = s.FindEvent(ctx, 99)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_ReturnsCopies(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	evt := newEvent("original", time.Now())
	require.NoError(t, s.CreateEvent(ctx, evt))

	evt.Name = "mutated"
	*evt.Location = "elsewhere"

	got, err := s.FindEvent(ctx, evt.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Name)
	assert.Equal(t, "Gangnam", *got.Location)

	got.Manager.ID = 42
	again, err := s.FindEvent(ctx, evt.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.Manager.ID)
}

func TestStore_UpdateEventKeepsManager(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	evt := newEvent("before", time.Now())
	require.NoError(t, s.CreateEvent(ctx, evt))

	evt.Name = "after"
	evt.Manager = &v1.AccountRef{ID: 9}
	require.NoError(t, s.UpdateEvent(ctx, evt))

	got, err := s.FindEvent(ctx, evt.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, int64(1), got.Manager.ID)

	missing := newEvent("ghost", time.Now())
	missing.ID = 404
	assert.ErrorIs(t, s.UpdateEvent(ctx, missing), storage.ErrNotFound)
}

func TestStore_ListEvents(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	base := time.Date(2018, 11, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 30; i++ {
		// later ids begin earlier
		evt := newEvent(fmt.Sprintf("event %02d", i), base.Add(time.Duration(30-i)*time.Hour))
		require.NoError(t, s.CreateEvent(ctx, evt))
	}

	page, total, err := s.ListEvents(ctx, 10, 10, storage.Sort{Field: storage.SortByName, Desc: true})
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)
	require.Len(t, page, 10)
	assert.Equal(t, "event 19", page[0].Name)
	assert.Equal(t, "event 10", page[9].Name)

	page, _, err = s.ListEvents(ctx, 0, 3, storage.Sort{Field: storage.SortByBeginEventDateTime})
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, int64(30), page[0].ID)

	page, _, err = s.ListEvents(ctx, 25, 10, storage.Sort{Field: storage.SortByID})
	require.NoError(t, err)
	require.Len(t, page, 5)
	assert.Equal(t, int64(26), page[0].ID)

	page, total, err = s.ListEvents(ctx, 40, 10, storage.Sort{})
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)
	assert.Empty(t, page)

	page, total, err = s.ListEvents(ctx, -20, 10, storage.Sort{})
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)
	assert.Empty(t, page)
}

func TestStore_Accounts(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	acc := &v1.Account{Email: "user@email.com", Password: "{bcrypt}x", Roles: []v1.AccountRole{v1.RoleUser}}
	require.NoError(t, s.SaveAccount(ctx, acc))
	assert.Equal(t, int64(1), acc.ID)

	dup := &v1.Account{Email: "user@email.com", Password: "{bcrypt}y"}
	assert.ErrorIs(t, s.SaveAccount(ctx, dup), storage.ErrDuplicate)

	got, err := s.FindAccountByEmail(ctx, "user@email.com")
	require.NoError(t, err)
	assert.Equal(t, acc.ID, got.ID)

	got.Roles[0] = v1.RoleAdmin
	byID, err := s.FindAccountByID(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, []v1.AccountRole{v1.RoleUser}, byID.Roles)

	_, err = s.FindAccountByEmail(ctx, "nobody@email.com")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = s.FindAccountByID(ctx, 7)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
