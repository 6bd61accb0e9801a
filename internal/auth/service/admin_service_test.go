package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/service"
)

func TestAdminService_ListCollection(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, domain.CollectionUsers, "uid-1",
		map[string]any{"name": "Ada", "email": "ada@example.com"}))

	s := service.NewAdminService(store, clockwork.NewFakeClock())
	records, err := s.ListCollection(ctx, domain.CollectionUsers)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "uid-1", records[0]["id"])
	assert.Equal(t, "Ada", records[0]["name"])
}

func TestAdminService_Metrics(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	ctx := context.Background()

	seed := func(collection string, key string, age time.Duration) {
		require.NoError(t, store.Set(ctx, collection, key, map[string]any{
			"createdAt": now.Add(-age).Format(time.RFC3339Nano),
		}))
	}

	// users: 2 this month, 1 last month, 1 older.
	seed(domain.CollectionUsers, "u1", 24*time.Hour)
	seed(domain.CollectionUsers, "u2", 48*time.Hour)
	seed(domain.CollectionUsers, "u3", 45*24*time.Hour)
	seed(domain.CollectionUsers, "u4", 90*24*time.Hour)
	// feedbacks: 1 this month, none before.
	seed(domain.CollectionFeedbacks, "f1", time.Hour)

	s := service.NewAdminService(store, clockwork.NewFakeClockAt(now))
	metrics, err := s.Metrics(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, metrics.Users.Total)
	// (2-1)/1 = +100.0% growth.
	assert.Equal(t, "100.0", metrics.Users.Change)
	assert.True(t, metrics.Users.Positive)

	assert.Equal(t, 1, metrics.Feedbacks.Total)
	// No last-month baseline: reported as flat 100% growth.
	assert.Equal(t, "100.0", metrics.Feedbacks.Change)

	assert.Zero(t, metrics.Sessions.Total)
	assert.Equal(t, "0.0", metrics.Sessions.Change)
	assert.True(t, metrics.Sessions.Positive)
}

func TestAdminService_RecentActivity(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	store := newFakeStore()
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, store.Set(ctx, domain.CollectionUsers, fmt.Sprintf("u-%02d", i), map[string]any{
			"createdAt": now.Add(time.Duration(i) * time.Minute).Format(time.RFC3339Nano),
		}))
	}

	s := service.NewAdminService(store, clockwork.NewFakeClockAt(now))
	activity, err := s.RecentActivity(ctx)
	require.NoError(t, err)

	// Capped at ten, newest first.
	require.Len(t, activity.RecentUsers, 10)
	assert.Empty(t, activity.RecentFeedbacks)
}
