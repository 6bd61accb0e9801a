package dto

// MetricSnapshot is one collection's headline number plus month-over-month
// growth, formatted the way the dashboard renders it.
type MetricSnapshot struct {
	Total    int    `json:"total"`
	Change   string `json:"change"`
	Positive bool   `json:"isPositive"`
}

type AdminMetrics struct {
	Users     MetricSnapshot `json:"users"`
	Feedbacks MetricSnapshot `json:"feedbacks"`
	Sessions  MetricSnapshot `json:"sessions"`
}

type RecentActivity struct {
	RecentUsers     []map[string]any `json:"recentUsers"`
	RecentFeedbacks []map[string]any `json:"recentFeedbacks"`
}
