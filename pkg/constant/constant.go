package constant

import "time"

// Login rate limiting policy. Not configurable at runtime.
const (
	MaxLoginAttempts = 4
	BanDuration      = 6 * time.Minute
)

// Session cookie policy.
const (
	SessionCookieName     = "session"
	SessionTrackedCookie  = "mockrithm_session_tracked"
	SessionDuration       = 7 * 24 * time.Hour
	SessionCookieSameSite = "Lax"
	SessionCookiePath     = "/"
)

// IdentityTokenTTL bounds how long an identity token can be exchanged for a
// session cookie after interactive login.
const IdentityTokenTTL = 5 * time.Minute

// DefaultDrainBatchSize caps how many documents a single drain iteration
// fetches and deletes.
const DefaultDrainBatchSize = 500

// Password reset codes.
const (
	ResetCodeTTL    = 10 * time.Minute
	ResetCodeLength = 6
)

const DefaultNewUserName = "New User"
