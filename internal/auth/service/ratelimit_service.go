package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/dto"
	authconstant "github.com/AhapraxAhmed/mockrithm/pkg/constant"
)

// RateLimitService enforces the per-IP failed-login policy: after
// MaxLoginAttempts consecutive failures the IP is banned for BanDuration.
// Records are overwritten whole on every failure and deleted on success;
// a record with a past bannedUntil is simply ignored, not cleaned up.
type RateLimitService struct {
	store domain.DocumentStore
	clock clockwork.Clock
	log   zerolog.Logger
}

func NewRateLimitService(store domain.DocumentStore, clock clockwork.Clock, log zerolog.Logger) *RateLimitService {
	return &RateLimitService{store: store, clock: clock, log: log}
}

// Check reports whether the IP is currently banned. Read-only.
func (s *RateLimitService) Check(ctx context.Context, ip string) (*dto.RateLimitStatus, error) {
	fields, err := s.store.Get(ctx, domain.CollectionRateLimits, ip)
	if err != nil {
		return nil, err
	}
	if fields == nil {
		return &dto.RateLimitStatus{}, nil
	}

	rec := domain.RateLimitFromFields(ip, fields)
	now := s.clock.Now()
	if rec.BannedUntil == nil || !rec.BannedUntil.After(now) {
		return &dto.RateLimitStatus{}, nil
	}

	waitMinutes := int(math.Ceil(float64(rec.BannedUntil.Sub(now).Milliseconds()) / 60000))

	return &dto.RateLimitStatus{
		Banned:            true,
		RetryAfterMinutes: waitMinutes,
		Message:           fmt.Sprintf("Too many failed attempts. Your IP is banned for %d more minutes.", waitMinutes),
	}, nil
}

// RecordAttempt updates the IP's record after a credential check. A success
// deletes the record outright. A failure overwrites it with an incremented
// counter; reaching the threshold stamps the ban window.
//
// Two concurrent failures can read the same counter and both write the same
// increment, under-counting an attack burst. Last-writer-wins is accepted
// here; the store has no atomic increment.
func (s *RateLimitService) RecordAttempt(ctx context.Context, ip string, success bool) error {
	if success {
		return s.store.Delete(ctx, domain.CollectionRateLimits, ip)
	}

	fields, err := s.store.Get(ctx, domain.CollectionRateLimits, ip)
	if err != nil {
		return err
	}

	attempts := domain.FieldInt(fields, "attempts") + 1
	now := s.clock.Now()

	record := map[string]any{
		"attempts":      attempts,
		"lastAttemptAt": now.Format(time.RFC3339Nano),
		"bannedUntil":   nil,
	}
	if attempts >= authconstant.MaxLoginAttempts {
		record["bannedUntil"] = now.Add(authconstant.BanDuration).Format(time.RFC3339Nano)
		s.log.Warn().Str("ip", ip).Int("attempts", attempts).Msg("login ban triggered")
	}

	return s.store.Set(ctx, domain.CollectionRateLimits, ip, record)
}
