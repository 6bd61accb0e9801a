package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/identity"
	"github.com/AhapraxAhmed/mockrithm/internal/mailer"
	authconstant "github.com/AhapraxAhmed/mockrithm/pkg/constant"
)

// PasswordResetService issues short-lived verification codes and mails them
// out. Codes live in the password_resets collection keyed by email, so a
// repeat request simply overwrites the previous code.
type PasswordResetService struct {
	store    domain.DocumentStore
	provider identity.Provider
	mail     mailer.Mailer
	clock    clockwork.Clock
}

func NewPasswordResetService(store domain.DocumentStore, provider identity.Provider, mail mailer.Mailer, clock clockwork.Clock) *PasswordResetService {
	return &PasswordResetService{
		store:    store,
		provider: provider,
		mail:     mail,
		clock:    clock,
	}
}

// RequestReset generates, stores, and dispatches a verification code.
// Fails with ErrIdentityNotFound for unregistered addresses.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	if _, err := s.provider.LookupByEmail(ctx, email); err != nil {
		return err
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate reset code: %w", err)
	}

	now := s.clock.Now()
	fields := map[string]any{
		"code":      code,
		"expiresAt": now.Add(authconstant.ResetCodeTTL).Format(time.RFC3339Nano),
		"createdAt": now.Format(time.RFC3339Nano),
	}
	if err := s.store.Set(ctx, domain.CollectionPasswordResets, email, fields); err != nil {
		return err
	}

	expiresInMinutes := int(authconstant.ResetCodeTTL.Minutes())

	return s.mail.SendVerificationCode(ctx, email, code, expiresInMinutes)
}

// generateCode returns a uniformly random ResetCodeLength-digit code with no
// leading zero.
func generateCode() (string, error) {
	low := int64(math.Pow10(authconstant.ResetCodeLength - 1))
	n, err := rand.Int(rand.Reader, big.NewInt(9*low))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", authconstant.ResetCodeLength, n.Int64()+low), nil
}
