package service_test

import (
	"context"
	"sort"
	"time"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
)

// fakeStore is an in-memory DocumentStore for scenario tests that need real
// read-your-writes behavior across calls. It keeps per-collection maps,
// orders queries by key, and counts fetches so drain termination can be
// asserted.
type fakeStore struct {
	collections map[string]map[string]map[string]any
	queryCalls  int
	deleteCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{collections: make(map[string]map[string]map[string]any)}
}

func (f *fakeStore) Get(_ context.Context, collection, key string) (map[string]any, error) {
	fields, ok := f.collections[collection][key]
	if !ok {
		return nil, nil
	}
	return fields, nil
}

func (f *fakeStore) Set(_ context.Context, collection, key string, fields map[string]any) error {
	if f.collections[collection] == nil {
		f.collections[collection] = make(map[string]map[string]any)
	}
	f.collections[collection][key] = fields
	return nil
}

func (f *fakeStore) Delete(_ context.Context, collection, key string) error {
	delete(f.collections[collection], key)
	return nil
}

func (f *fakeStore) Query(_ context.Context, q domain.Query) ([]domain.Document, error) {
	f.queryCalls++

	keys := make([]string, 0, len(f.collections[q.Collection]))
	for key, fields := range f.collections[q.Collection] {
		if matchesFilters(fields, q.Filters) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	if q.Descending {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	}

	var docs []domain.Document
	for _, key := range keys {
		if q.Limit > 0 && len(docs) == q.Limit {
			break
		}
		docs = append(docs, domain.Document{Key: key, Fields: f.collections[q.Collection][key]})
	}
	return docs, nil
}

func (f *fakeStore) Count(_ context.Context, collection string, filters []domain.Filter) (int, error) {
	count := 0
	for _, fields := range f.collections[collection] {
		if matchesFilters(fields, filters) {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) BatchDelete(_ context.Context, collection string, keys []string) error {
	f.deleteCalls++
	for _, key := range keys {
		delete(f.collections[collection], key)
	}
	return nil
}

func (f *fakeStore) size(collection string) int {
	return len(f.collections[collection])
}

func matchesFilters(fields map[string]any, filters []domain.Filter) bool {
	for _, filter := range filters {
		if !matchesFilter(fields, filter) {
			return false
		}
	}
	return true
}

func matchesFilter(fields map[string]any, filter domain.Filter) bool {
	if want, ok := filter.Value.(time.Time); ok {
		got, ok := domain.FieldTime(fields, filter.Field)
		if !ok {
			return false
		}
		switch filter.Op {
		case ">=":
			return !got.Before(want)
		case "<":
			return got.Before(want)
		case "==":
			return got.Equal(want)
		}
		return false
	}

	got := domain.FieldString(fields, filter.Field)
	want, _ := filter.Value.(string)
	switch filter.Op {
	case "==":
		return got == want
	case ">=":
		return got >= want
	case "<":
		return got < want
	}
	return false
}
