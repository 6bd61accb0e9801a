package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
)

// DirectoryService keeps exactly one user document per identity and appends
// the sign-in audit log.
type DirectoryService struct {
	store         domain.DocumentStore
	clock         clockwork.Clock
	operatorEmail string
	log           zerolog.Logger
}

func NewDirectoryService(store domain.DocumentStore, clock clockwork.Clock, operatorEmail string, log zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		store:         store,
		clock:         clock,
		operatorEmail: operatorEmail,
		log:           log,
	}
}

// EnsureUserRecord returns the existing record or creates it on first sight.
// Read-check-write without a transaction: concurrent invocations write the
// same key, so last-writer-wins cannot produce duplicates or divergent roles.
func (s *DirectoryService) EnsureUserRecord(ctx context.Context, identityID, email, displayNameHint string) (*domain.UserRecord, error) {
	fields, err := s.store.Get(ctx, domain.CollectionUsers, identityID)
	if err != nil {
		return nil, err
	}
	if fields != nil {
		return domain.UserFromFields(identityID, fields), nil
	}

	role := domain.RoleUser
	if email == s.operatorEmail {
		role = domain.RoleAdmin
	}

	name := displayNameHint
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	record := &domain.UserRecord{
		ID:        identityID,
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    domain.StatusActive,
		CreatedAt: s.clock.Now(),
	}
	if err := s.store.Set(ctx, domain.CollectionUsers, identityID, record.Fields()); err != nil {
		return nil, err
	}

	s.log.Info().Str("uid", identityID).Str("role", string(role)).Msg("user record created")

	return record, nil
}

// RecordSignIn appends one immutable audit entry for a successful sign-in.
func (s *DirectoryService) RecordSignIn(ctx context.Context, userID, email string) error {
	entry := &domain.SessionLogEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		CreatedAt: s.clock.Now(),
	}

	return s.store.Set(ctx, domain.CollectionSessions, entry.ID, entry.Fields())
}

// TrackSession records a browser session once. The caller supplies
// alreadyTracked from its own stored marker; the service never consults
// ambient state to decide. Returns whether an entry was written.
func (s *DirectoryService) TrackSession(ctx context.Context, userID, email string, alreadyTracked bool) (bool, error) {
	if alreadyTracked {
		return false, nil
	}

	if err := s.RecordSignIn(ctx, userID, email); err != nil {
		return false, err
	}

	return true, nil
}
