package dto

// RateLimitStatus is the read-only answer of the rate limiter. Message is
// user-facing and already includes the remaining wait.
type RateLimitStatus struct {
	Banned            bool   `json:"isBanned"`
	RetryAfterMinutes int    `json:"retryAfterMinutes,omitempty"`
	Message           string `json:"message,omitempty"`
}

// SessionCookie carries the storage instructions for the session cookie.
// MaxAge <= 0 instructs the browser to drop the cookie.
type SessionCookie struct {
	Name     string
	Value    string
	MaxAge   int
	Path     string
	HTTPOnly bool
	Secure   bool
	SameSite string
}

// DeleteAccountResult is the structured outcome of the deletion cascade.
// Completed steps are never rolled back, so a failed result may describe a
// partially applied cascade; re-invoking is safe.
type DeleteAccountResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
