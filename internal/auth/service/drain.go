package service

import (
	"context"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
)

// Scope names the records a drain erases: a whole collection, or the subset
// matching the filters.
type Scope struct {
	Collection string
	Filters    []domain.Filter
}

// Drain deletes everything in scope in bounded batches: fetch up to
// batchSize documents in stable key order, delete them atomically, repeat
// until a fetch comes back empty. The loop is iterative so arbitrarily large
// collections never grow a call stack, and iterations are strictly
// sequential: a batch is committed before the next fetch, which is what
// guarantees deleted documents are never re-observed.
//
// Interrupting between a delete and the next fetch is safe: re-invoking with
// the same scope resumes where the previous run stopped, and draining an
// already-empty scope is a no-op.
func Drain(ctx context.Context, store domain.DocumentStore, scope Scope, batchSize int) error {
	for {
		docs, err := store.Query(ctx, domain.Query{
			Collection: scope.Collection,
			Filters:    scope.Filters,
			Limit:      batchSize,
		})
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return nil
		}

		keys := make([]string, len(docs))
		for i, doc := range docs {
			keys[i] = doc.Key
		}

		if err := store.BatchDelete(ctx, scope.Collection, keys); err != nil {
			return err
		}
	}
}
