package insight

import "context"

type InsightService interface {
	// GetWeeklyDashboard returns the dashboard for the week starting at weekStart
	// (YYYY-MM-DD). Results are cached per (storeID, weekStart).
	GetWeeklyDashboard(ctx context.Context, storeID string, weekStart string) (*WeeklyDashboard, error)

	// InvalidateStore drops every cached dashboard of a store
	InvalidateStore(storeID string)
}
