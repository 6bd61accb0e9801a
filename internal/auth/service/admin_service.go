package service

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
	"github.com/AhapraxAhmed/mockrithm/internal/auth/dto"
)

const recentActivityLimit = 10

// AdminService backs the dashboard: raw collection listings, headline
// counts with month-over-month growth, and recent activity.
type AdminService struct {
	store domain.DocumentStore
	clock clockwork.Clock
}

func NewAdminService(store domain.DocumentStore, clock clockwork.Clock) *AdminService {
	return &AdminService{store: store, clock: clock}
}

// ListCollection returns every document of a collection with its key
// injected as "id", the shape the dashboard tables render directly.
func (s *AdminService) ListCollection(ctx context.Context, collection string) ([]map[string]any, error) {
	docs, err := s.store.Query(ctx, domain.Query{Collection: collection})
	if err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(docs))
	for _, doc := range docs {
		record := map[string]any{"id": doc.Key}
		for k, v := range doc.Fields {
			record[k] = v
		}
		out = append(out, record)
	}

	return out, nil
}

// Metrics computes totals and 30/60-day growth for the dashboard cards.
func (s *AdminService) Metrics(ctx context.Context) (*dto.AdminMetrics, error) {
	now := s.clock.Now()
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	sixtyDaysAgo := now.AddDate(0, 0, -60)

	snapshot := func(collection string) (dto.MetricSnapshot, error) {
		total, err := s.store.Count(ctx, collection, nil)
		if err != nil {
			return dto.MetricSnapshot{}, err
		}

		thisMonth, err := s.store.Count(ctx, collection, []domain.Filter{
			{Field: "createdAt", Op: ">=", Value: thirtyDaysAgo},
		})
		if err != nil {
			return dto.MetricSnapshot{}, err
		}

		lastMonth, err := s.store.Count(ctx, collection, []domain.Filter{
			{Field: "createdAt", Op: ">=", Value: sixtyDaysAgo},
			{Field: "createdAt", Op: "<", Value: thirtyDaysAgo},
		})
		if err != nil {
			return dto.MetricSnapshot{}, err
		}

		var change float64
		switch {
		case lastMonth > 0:
			change = float64(thisMonth-lastMonth) / float64(lastMonth) * 100
		case thisMonth > 0:
			change = 100
		}

		return dto.MetricSnapshot{
			Total:    total,
			Change:   fmt.Sprintf("%.1f", change),
			Positive: change >= 0,
		}, nil
	}

	users, err := snapshot(domain.CollectionUsers)
	if err != nil {
		return nil, err
	}
	feedbacks, err := snapshot(domain.CollectionFeedbacks)
	if err != nil {
		return nil, err
	}
	sessions, err := snapshot(domain.CollectionSessions)
	if err != nil {
		return nil, err
	}

	return &dto.AdminMetrics{Users: users, Feedbacks: feedbacks, Sessions: sessions}, nil
}

// RecentActivity returns the newest users and feedbacks.
func (s *AdminService) RecentActivity(ctx context.Context) (*dto.RecentActivity, error) {
	recent := func(collection string) ([]map[string]any, error) {
		docs, err := s.store.Query(ctx, domain.Query{
			Collection: collection,
			OrderBy:    "createdAt",
			Descending: true,
			Limit:      recentActivityLimit,
		})
		if err != nil {
			return nil, err
		}

		out := make([]map[string]any, 0, len(docs))
		for _, doc := range docs {
			record := map[string]any{"id": doc.Key}
			for k, v := range doc.Fields {
				record[k] = v
			}
			out = append(out, record)
		}

		return out, nil
	}

	users, err := recent(domain.CollectionUsers)
	if err != nil {
		return nil, err
	}
	feedbacks, err := recent(domain.CollectionFeedbacks)
	if err != nil {
		return nil, err
	}

	return &dto.RecentActivity{RecentUsers: users, RecentFeedbacks: feedbacks}, nil
}
