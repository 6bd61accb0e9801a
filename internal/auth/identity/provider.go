package identity

//go:generate mockgen -destination=../../mocks/mock_identity_provider.go -package=mocks github.com/AhapraxAhmed/mockrithm/internal/auth/identity Provider

import (
	"context"
	"time"
)

// Identity is the provider's view of one account: the durable subject id and
// the email it was registered with.
type Identity struct {
	SubjectID string
	Email     string
}

// Provider is the consumed identity backend. Identity tokens are the
// short-lived credentials produced by interactive login; session artifacts
// are the long-lived cookie values exchanged for them. Verification is
// cryptographic and never touches the user directory.
type Provider interface {
	// CreateIdentity registers a new account and returns its identity.
	// Fails with ErrEmailAlreadyInUse when the email is taken.
	CreateIdentity(ctx context.Context, email, password, name string) (*Identity, error)

	// Authenticate checks credentials and mints a short-lived identity
	// token, returning the resolved identity alongside it so callers need
	// no follow-up verification. Fails with ErrIdentityNotFound or
	// ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (string, *Identity, error)

	// VerifyIdentityToken fails with ErrInvalidToken on any rejection.
	VerifyIdentityToken(ctx context.Context, token string) (*Identity, error)

	// LookupByEmail fails with ErrIdentityNotFound for unknown addresses.
	LookupByEmail(ctx context.Context, email string) (*Identity, error)

	// IssueSessionArtifact exchanges a valid identity token for a signed
	// session value with the given lifetime.
	IssueSessionArtifact(ctx context.Context, identityToken string, ttl time.Duration) (string, error)

	// VerifySessionArtifact fails with ErrInvalidSession on any rejection,
	// including expiry and signature mismatch.
	VerifySessionArtifact(ctx context.Context, value string) (*Identity, error)

	// DeleteIdentity removes the account. Deleting an absent identity is a
	// no-op.
	DeleteIdentity(ctx context.Context, subjectID string) error
}
