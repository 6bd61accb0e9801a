package domain

//go:generate mockgen -destination=../../mocks/mock_document_store.go -package=mocks github.com/AhapraxAhmed/mockrithm/internal/auth/domain DocumentStore

import "context"

// Collection names used by the subsystem.
const (
	CollectionRateLimits     = "rate_limits"
	CollectionUsers          = "users"
	CollectionSessions       = "sessions"
	CollectionInterviews     = "interviews"
	CollectionFeedbacks      = "interviewsfeedback"
	CollectionPasswordResets = "password_resets"
	CollectionIdentities     = "identities"
)

// Filter is a single equality or range predicate over a document field.
// Supported operators: "==", ">=", "<".
type Filter struct {
	Field string
	Op    string
	Value any
}

// Query describes a bounded read over one collection. An empty OrderBy sorts
// by document key, which is the stable ordering the drain loop relies on.
type Query struct {
	Collection string
	Filters    []Filter
	OrderBy    string
	Descending bool
	Limit      int
}

// Document is one stored record: its key plus its decoded fields.
type Document struct {
	Key    string
	Fields map[string]any
}

// DocumentStore is the consumed key-value document database. Get returns
// (nil, nil) for an absent document; Set is a full overwrite, never a merge;
// BatchDelete removes all given keys atomically.
type DocumentStore interface {
	Get(ctx context.Context, collection, key string) (map[string]any, error)
	Set(ctx context.Context, collection, key string, fields map[string]any) error
	Delete(ctx context.Context, collection, key string) error
	Query(ctx context.Context, q Query) ([]Document, error)
	Count(ctx context.Context, collection string, filters []Filter) (int, error)
	BatchDelete(ctx context.Context, collection string, keys []string) error
}
