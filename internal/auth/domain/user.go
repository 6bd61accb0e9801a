package domain

import "time"

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

const StatusActive = "Active"

type UserRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	// Synthesized marks a record built from verified session claims because
	// the directory document was not yet visible. It is never stored.
	Synthesized bool `json:"-"`
}

// Fields converts the record into its stored document shape.
func (u *UserRecord) Fields() map[string]any {
	return map[string]any{
		"name":      u.Name,
		"email":     u.Email,
		"role":      string(u.Role),
		"status":    u.Status,
		"createdAt": u.CreatedAt.Format(time.RFC3339Nano),
	}
}

// UserFromFields rebuilds a UserRecord from a stored document.
func UserFromFields(id string, fields map[string]any) *UserRecord {
	createdAt, _ := FieldTime(fields, "createdAt")

	return &UserRecord{
		ID:        id,
		Name:      FieldString(fields, "name"),
		Email:     FieldString(fields, "email"),
		Role:      Role(FieldString(fields, "role")),
		Status:    FieldString(fields, "status"),
		CreatedAt: createdAt,
	}
}

type RateLimitRecord struct {
	IP            string
	Attempts      int
	LastAttemptAt time.Time
	BannedUntil   *time.Time
}

func RateLimitFromFields(ip string, fields map[string]any) *RateLimitRecord {
	rec := &RateLimitRecord{
		IP:       ip,
		Attempts: FieldInt(fields, "attempts"),
	}
	if t, ok := FieldTime(fields, "lastAttemptAt"); ok {
		rec.LastAttemptAt = t
	}
	if t, ok := FieldTime(fields, "bannedUntil"); ok {
		rec.BannedUntil = &t
	}

	return rec
}

type SessionLogEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e *SessionLogEntry) Fields() map[string]any {
	return map[string]any{
		"userId":    e.UserID,
		"email":     e.Email,
		"createdAt": e.CreatedAt.Format(time.RFC3339Nano),
	}
}
