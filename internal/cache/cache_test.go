package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiadeasalon/salon-manager/internal/models"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(rdb), mr
}

func TestClientSnapshotRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	clients := []models.Client{
		{ID: 1, ChildName: "Ana", ResponsibleName: "Maria"},
		{ID: 2, ChildName: "Bruno", ResponsibleName: "Carla"},
	}

	require.NoError(t, store.SaveClients(ctx, clients))

	loaded, err := store.LoadClients(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Ana", loaded[0].ChildName)
	assert.Equal(t, uint(2), loaded[1].ID)
}

func TestLoadClients_MissingSnapshot(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.LoadClients(context.Background())
	assert.Error(t, err, "sem snapshot o chamador volta ao banco")
}

func TestAppointmentSnapshotRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	v := 120.0
	apps := []models.Appointment{
		{ID: 1, ClientName: "Ana (Maria)", Date: "2026-08-10", Status: "completed", ServiceValue: &v},
	}

	require.NoError(t, store.SaveAppointments(ctx, apps))

	loaded, err := store.LoadAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	require.NotNil(t, loaded[0].ServiceValue)
	assert.Equal(t, 120.0, *loaded[0].ServiceValue)
}

func TestReminderFlagIsPerClientAndPerDay(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	today := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	assert.False(t, store.ReminderSentToday(ctx, 7, today))

	require.NoError(t, store.MarkReminderSent(ctx, 7, today))

	assert.True(t, store.ReminderSentToday(ctx, 7, today))
	assert.False(t, store.ReminderSentToday(ctx, 8, today), "a flag é por cliente")
	assert.False(t, store.ReminderSentToday(ctx, 7, tomorrow), "a chave embute a data, amanhã recomeça")
}

func TestBirthdayCheckedFlag(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	today := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	assert.False(t, store.BirthdayCheckedToday(ctx, today))

	require.NoError(t, store.MarkBirthdayChecked(ctx, today))

	assert.True(t, store.BirthdayCheckedToday(ctx, today))
	assert.False(t, store.BirthdayCheckedToday(ctx, yesterday))
}
