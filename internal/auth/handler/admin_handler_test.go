package handler_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/AhapraxAhmed/mockrithm/internal/auth/domain"
)

func TestAdminUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	t.Run("success", func(t *testing.T) {
		f.store.EXPECT().Query(gomock.Any(), domain.Query{Collection: domain.CollectionUsers}).
			Return([]domain.Document{
				{Key: "uid-1", Fields: userFields("ada@example.com", f.clock.Now())},
			}, nil)

		resp, _ := f.app.Test(httptest.NewRequest("GET", "/api/admin/users", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var users []map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&users)
		if assert.Len(t, users, 1) {
			assert.Equal(t, "uid-1", users[0]["id"])
			assert.Equal(t, "ada@example.com", users[0]["email"])
		}
	})

	t.Run("store failure", func(t *testing.T) {
		f.store.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		resp, _ := f.app.Test(httptest.NewRequest("GET", "/api/admin/users", nil))
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		var body map[string]any
		_ = json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "Failed to fetch users", body["error"])
	})
}

func TestAdminFeedbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.store.EXPECT().Query(gomock.Any(), domain.Query{Collection: domain.CollectionFeedbacks}).
		Return([]domain.Document{
			{Key: "fb-1", Fields: map[string]any{"userId": "uid-1", "rating": float64(5)}},
		}, nil)

	resp, _ := f.app.Test(httptest.NewRequest("GET", "/api/admin/feedbacks", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var feedbacks []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&feedbacks)
	if assert.Len(t, feedbacks, 1) {
		assert.Equal(t, "fb-1", feedbacks[0]["id"])
	}
}

func TestAdminMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	t.Run("success", func(t *testing.T) {
		// Per collection: total, last 30 days, the 30 days before that.
		counts := map[string][3]int{
			domain.CollectionUsers:     {40, 20, 10},
			domain.CollectionFeedbacks: {6, 3, 3},
			domain.CollectionSessions:  {100, 50, 25},
		}
		for collection, c := range counts {
			f.store.EXPECT().Count(gomock.Any(), collection, nil).Return(c[0], nil)
			f.store.EXPECT().Count(gomock.Any(), collection, gomock.Len(1)).Return(c[1], nil)
			f.store.EXPECT().Count(gomock.Any(), collection, gomock.Len(2)).Return(c[2], nil)
		}

		resp, _ := f.app.Test(httptest.NewRequest("GET", "/api/admin/metrics", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				Users struct {
					Total      int    `json:"total"`
					Change     string `json:"change"`
					IsPositive bool   `json:"isPositive"`
				} `json:"users"`
			} `json:"data"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		assert.True(t, body.Success)
		assert.Equal(t, 40, body.Data.Users.Total)
		assert.Equal(t, "100.0", body.Data.Users.Change)
		assert.True(t, body.Data.Users.IsPositive)
	})

	t.Run("store failure", func(t *testing.T) {
		f.store.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, errors.New("connection reset"))

		resp, _ := f.app.Test(httptest.NewRequest("GET", "/api/admin/metrics", nil))
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}

func TestAdminRecentActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	f.store.EXPECT().Query(gomock.Any(), domain.Query{
		Collection: domain.CollectionUsers,
		OrderBy:    "createdAt",
		Descending: true,
		Limit:      10,
	}).Return([]domain.Document{
		{Key: "uid-1", Fields: userFields("ada@example.com", f.clock.Now().Add(-time.Hour))},
	}, nil)
	f.store.EXPECT().Query(gomock.Any(), domain.Query{
		Collection: domain.CollectionFeedbacks,
		OrderBy:    "createdAt",
		Descending: true,
		Limit:      10,
	}).Return(nil, nil)

	resp, _ := f.app.Test(httptest.NewRequest("GET", "/api/admin/activity", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			RecentUsers     []map[string]any `json:"recentUsers"`
			RecentFeedbacks []map[string]any `json:"recentFeedbacks"`
		} `json:"data"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	assert.True(t, body.Success)
	assert.Len(t, body.Data.RecentUsers, 1)
	assert.Empty(t, body.Data.RecentFeedbacks)
}

func TestAdminResetSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newHandlerFixture(t, ctrl)

	t.Run("drains the collection in batches", func(t *testing.T) {
		gomock.InOrder(
			f.store.EXPECT().Query(gomock.Any(), domain.Query{Collection: domain.CollectionSessions, Limit: 500}).
				Return([]domain.Document{{Key: "s1"}, {Key: "s2"}}, nil),
			f.store.EXPECT().BatchDelete(gomock.Any(), domain.CollectionSessions, []string{"s1", "s2"}).Return(nil),
			f.store.EXPECT().Query(gomock.Any(), domain.Query{Collection: domain.CollectionSessions, Limit: 500}).
				Return(nil, nil),
		)

		resp, _ := f.app.Test(httptest.NewRequest("POST", "/api/admin/reset-sessions", nil))
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("store failure", func(t *testing.T) {
		f.store.EXPECT().Query(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		resp, _ := f.app.Test(httptest.NewRequest("POST", "/api/admin/reset-sessions", nil))
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})
}
