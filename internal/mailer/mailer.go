package mailer

//go:generate mockgen -destination=../mocks/mock_mailer.go -package=mocks github.com/AhapraxAhmed/mockrithm/internal/mailer Mailer

import "context"

// Mailer sends the outbound mail the subsystem needs. Implementations must
// be safe for concurrent use.
type Mailer interface {
	// SendVerificationCode delivers a password-reset code to the address.
	SendVerificationCode(ctx context.Context, to, code string, expiresInMinutes int) error
}
