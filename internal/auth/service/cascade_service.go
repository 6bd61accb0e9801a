package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/dto"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/identity"
)

const reauthHint = "Failed to delete account. You might need to re-authenticate (sign out and in) before deleting."

// CascadeService erases an account and everything it owns as an ordered,
// best-effort sequence. There is no cross-store transaction between the
// document store and the identity provider, so completed steps are never
// rolled back; every step is idempotent and a failed cascade can simply be
// re-run.
type CascadeService struct {
	store     domain.DocumentStore
	provider  identity.Provider
	batchSize int
	log       zerolog.Logger
}

func NewCascadeService(store domain.DocumentStore, provider identity.Provider, batchSize int, log zerolog.Logger) *CascadeService {
	return &CascadeService{
		store:     store,
		provider:  provider,
		batchSize: batchSize,
		log:       log,
	}
}

// DeleteAccount runs the cascade: drain the user's interviews, delete the
// user document, delete the identity. The session
// cookie is cleared by the caller only after a fully successful cascade.
// Any step's failure aborts the rest and reports a structured failure.
func (s *CascadeService) DeleteAccount(ctx context.Context, identityID string) dto.DeleteAccountResult {
	scope := Scope{
		Collection: domain.CollectionInterviews,
		Filters:    []domain.Filter{{Field: "userId", Op: "==", Value: identityID}},
	}
	if err := Drain(ctx, s.store, scope, s.batchSize); err != nil {
		s.log.Error().Err(err).Str("uid", identityID).Msg("account deletion: interview drain failed")
		return dto.DeleteAccountResult{Success: false, Message: reauthHint}
	}

	if err := s.store.Delete(ctx, domain.CollectionUsers, identityID); err != nil {
		s.log.Error().Err(err).Str("uid", identityID).Msg("account deletion: user record delete failed")
		return dto.DeleteAccountResult{Success: false, Message: reauthHint}
	}

	if err := s.provider.DeleteIdentity(ctx, identityID); err != nil {
		s.log.Error().Err(err).Str("uid", identityID).Msg("account deletion: identity delete failed")
		return dto.DeleteAccountResult{Success: false, Message: reauthHint}
	}

	s.log.Info().Str("uid", identityID).Msg("account deleted")

	return dto.DeleteAccountResult{Success: true}
}

// ResetCollection drains an entire collection. Used by administrative bulk
// resets; re-invoking on an empty collection returns immediately.
func (s *CascadeService) ResetCollection(ctx context.Context, name string) error {
	return Drain(ctx, s.store, Scope{Collection: name}, s.batchSize)
}
