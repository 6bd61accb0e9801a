package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/dto"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/identity"
	authconstant "github.com/AhapraxAhmed/mockrithm/pkg/constant"
)

// SessionService exchanges identity tokens for the long-lived session cookie
// and resolves the current user from it. Verification is cryptographic; the
// store is only consulted afterwards for the directory record.
type SessionService struct {
	provider      identity.Provider
	store         domain.DocumentStore
	secureCookies bool
	log           zerolog.Logger
}

func NewSessionService(provider identity.Provider, store domain.DocumentStore, secureCookies bool, log zerolog.Logger) *SessionService {
	return &SessionService{
		provider:      provider,
		store:         store,
		secureCookies: secureCookies,
		log:           log,
	}
}

// IssueSession wraps a verified identity token into the session cookie.
// Fails with ErrInvalidToken when the provider rejects the token.
func (s *SessionService) IssueSession(ctx context.Context, identityToken string) (*dto.SessionCookie, error) {
	value, err := s.provider.IssueSessionArtifact(ctx, identityToken, authconstant.SessionDuration)
	if err != nil {
		return nil, err
	}

	return &dto.SessionCookie{
		Name:     authconstant.SessionCookieName,
		Value:    value,
		MaxAge:   int(authconstant.SessionDuration.Seconds()),
		Path:     authconstant.SessionCookiePath,
		HTTPOnly: true,
		Secure:   s.secureCookies,
		SameSite: authconstant.SessionCookieSameSite,
	}, nil
}

// ClearSession returns the instruction to drop the stored cookie. Idempotent.
func (s *SessionService) ClearSession() *dto.SessionCookie {
	return &dto.SessionCookie{
		Name:     authconstant.SessionCookieName,
		Value:    "",
		MaxAge:   -1,
		Path:     authconstant.SessionCookiePath,
		HTTPOnly: true,
		Secure:   s.secureCookies,
		SameSite: authconstant.SessionCookieSameSite,
	}
}

// CurrentUser resolves the cookie value to a user record. It fails closed:
// any verification or lookup failure yields nil, never an error. A verified
// subject whose directory document is not yet visible gets a synthesized
// record so a directory-sync race does not log the user out.
func (s *SessionService) CurrentUser(ctx context.Context, cookieValue string) *domain.UserRecord {
	if cookieValue == "" {
		return nil
	}

	ident, err := s.provider.VerifySessionArtifact(ctx, cookieValue)
	if err != nil {
		s.log.Debug().Err(err).Msg("session verification failed")
		return nil
	}

	fields, err := s.store.Get(ctx, domain.CollectionUsers, ident.SubjectID)
	if err != nil {
		s.log.Error().Err(err).Str("uid", ident.SubjectID).Msg("user lookup failed")
		return nil
	}
	if fields == nil {
		return &domain.UserRecord{
			ID:          ident.SubjectID,
			Email:       ident.Email,
			Name:        authconstant.DefaultNewUserName,
			Synthesized: true,
		}
	}

	return domain.UserFromFields(ident.SubjectID, fields)
}

func (s *SessionService) IsAuthenticated(ctx context.Context, cookieValue string) bool {
	return s.CurrentUser(ctx, cookieValue) != nil
}
