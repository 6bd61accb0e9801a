package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/service"
	"github.com/AhapraxAhmed/mockrithm/internal/mocks"
)

const testIP = "1.2.3.4"

func newRateLimitService(t *testing.T) (*service.RateLimitService, *mocks.MockDocumentStore, clockwork.FakeClock) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockDocumentStore(ctrl)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	s := service.NewRateLimitService(mockStore, clock, zerolog.Nop())

	return s, mockStore, clock
}

func TestRateLimitService_Check_NoRecord(t *testing.T) {
	s, mockStore, _ := newRateLimitService(t)

	mockStore.EXPECT().Get(gomock.Any(), domain.CollectionRateLimits, testIP).Return(nil, nil)

	status, err := s.Check(context.Background(), testIP)
	require.NoError(t, err)
	assert.False(t, status.Banned)
	assert.Zero(t, status.RetryAfterMinutes)
}

func TestRateLimitService_Check_ActiveBan(t *testing.T) {
	s, mockStore, clock := newRateLimitService(t)

	bannedUntil := clock.Now().Add(5*time.Minute + 30*time.Second)
	mockStore.EXPECT().Get(gomock.Any(), domain.CollectionRateLimits, testIP).Return(map[string]any{
		"attempts":      float64(4),
		"lastAttemptAt": clock.Now().Format(time.RFC3339Nano),
		"bannedUntil":   bannedUntil.Format(time.RFC3339Nano),
	}, nil)

	status, err := s.Check(context.Background(), testIP)
	require.NoError(t, err)
	assert.True(t, status.Banned)
	// 5m30s remaining rounds up to 6 minutes.
	assert.Equal(t, 6, status.RetryAfterMinutes)
	assert.Contains(t, status.Message, "6 more minutes")
}

func TestRateLimitService_Check_ExpiredBan(t *testing.T) {
	s, mockStore, clock := newRateLimitService(t)

	// A stale record with a past ban is treated as not banned but kept.
	bannedUntil := clock.Now().Add(-time.Minute)
	mockStore.EXPECT().Get(gomock.Any(), domain.CollectionRateLimits, testIP).Return(map[string]any{
		"attempts":    float64(4),
		"bannedUntil": bannedUntil.Format(time.RFC3339Nano),
	}, nil)

	status, err := s.Check(context.Background(), testIP)
	require.NoError(t, err)
	assert.False(t, status.Banned)
}

func TestRateLimitService_Check_StoreError(t *testing.T) {
	s, mockStore, _ := newRateLimitService(t)

	mockStore.EXPECT().Get(gomock.Any(), domain.CollectionRateLimits, testIP).
		Return(nil, errors.New("store unavailable"))

	_, err := s.Check(context.Background(), testIP)
	assert.Error(t, err)
}

func TestRateLimitService_RecordAttempt_SuccessDeletesRecord(t *testing.T) {
	s, mockStore, _ := newRateLimitService(t)

	mockStore.EXPECT().Delete(gomock.Any(), domain.CollectionRateLimits, testIP).Return(nil)

	err := s.RecordAttempt(context.Background(), testIP, true)
	assert.NoError(t, err)
}

func TestRateLimitService_RecordAttempt_FirstFailure(t *testing.T) {
	s, mockStore, clock := newRateLimitService(t)

	mockStore.EXPECT().Get(gomock.Any(), domain.CollectionRateLimits, testIP).Return(nil, nil)
	mockStore.EXPECT().
		Set(gomock.Any(), domain.CollectionRateLimits, testIP, map[string]any{
			"attempts":      1,
			"lastAttemptAt": clock.Now().Format(time.RFC3339Nano),
			"bannedUntil":   nil,
		}).
		Return(nil)

	err := s.RecordAttempt(context.Background(), testIP, false)
	assert.NoError(t, err)
}

func TestRateLimitService_RecordAttempt_ThresholdSetsBan(t *testing.T) {
	s, mockStore, clock := newRateLimitService(t)

	mockStore.EXPECT().Get(gomock.Any(), domain.CollectionRateLimits, testIP).Return(map[string]any{
		"attempts": float64(3),
	}, nil)
	mockStore.EXPECT().
		Set(gomock.Any(), domain.CollectionRateLimits, testIP, map[string]any{
			"attempts":      4,
			"lastAttemptAt": clock.Now().Format(time.RFC3339Nano),
			"bannedUntil":   clock.Now().Add(6 * time.Minute).Format(time.RFC3339Nano),
		}).
		Return(nil)

	err := s.RecordAttempt(context.Background(), testIP, false)
	assert.NoError(t, err)
}

// TestRateLimitService_BanScenario walks the full attack sequence: four
// failures ban the IP, the fifth attempt is rejected regardless of
// credentials, and the ban lapses once the window passes.
func TestRateLimitService_BanScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	store := newFakeStore()
	s := service.NewRateLimitService(store, clock, zerolog.Nop())
	ctx := context.Background()

	// Three failures: not banned yet.
	for i := 0; i < 3; i++ {
		require.NoError(t, s.RecordAttempt(ctx, testIP, false))
	}
	status, err := s.Check(ctx, testIP)
	require.NoError(t, err)
	assert.False(t, status.Banned)

	// Fourth failure triggers the ban.
	require.NoError(t, s.RecordAttempt(ctx, testIP, false))
	status, err = s.Check(ctx, testIP)
	require.NoError(t, err)
	assert.True(t, status.Banned)
	assert.LessOrEqual(t, status.RetryAfterMinutes, 6)
	assert.Positive(t, status.RetryAfterMinutes)

	// After the 6-minute window the IP is usable again, though the stale
	// record still physically exists.
	clock.Advance(6*time.Minute + time.Second)
	status, err = s.Check(ctx, testIP)
	require.NoError(t, err)
	assert.False(t, status.Banned)
	fields, _ := store.Get(ctx, domain.CollectionRateLimits, testIP)
	assert.NotNil(t, fields)

	// A success wipes the record entirely.
	require.NoError(t, s.RecordAttempt(ctx, testIP, true))
	fields, _ = store.Get(ctx, domain.CollectionRateLimits, testIP)
	assert.Nil(t, fields)
}
