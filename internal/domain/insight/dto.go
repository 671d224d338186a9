package insight

import (
	"time"

	"github.com/shopspring/decimal"
)

// HourlyInsight is the snapshot of one [StartTime, EndTime) bucket for a store
type HourlyInsight struct {
	StartTime             time.Time                  `json:"start_time"`
	EndTime               time.Time                  `json:"end_time"`
	TotalRevenue          decimal.Decimal            `json:"total_revenue"`
	TotalItemsSold        int64                      `json:"total_items_sold"`
	ActiveStaffCount      int                        `json:"active_staff_count"`
	RevenueByCategory     map[string]decimal.Decimal `json:"revenue_by_category"`
	RevenueByJobTitle     map[string]decimal.Decimal `json:"revenue_by_job_title"`
	RevenueByStaffName    map[string]decimal.Decimal `json:"revenue_by_staff_name"`
	IsUnderutilised       bool                       `json:"is_underutilised"`
	RevenuePerStaffMember decimal.Decimal            `json:"revenue_per_staff_member"`
}

// WeeklyDashboard aggregates the 168 hourly insights of a store-week
type WeeklyDashboard struct {
	StoreID            string                     `json:"store_id"`
	WeekStart          string                     `json:"week_start"` // YYYY-MM-DD
	Timezone           string                     `json:"timezone"`
	OpeningTime        string                     `json:"opening_time"`
	ClosingTime        string                     `json:"closing_time"`
	TotalRevenue       decimal.Decimal            `json:"total_revenue"`
	TotalItemsSold     int64                      `json:"total_items_sold"`
	UnderutilisedHours int                        `json:"underutilised_hours"`
	RevenueByDay       map[string]decimal.Decimal `json:"revenue_by_day"` // MONDAY..SUNDAY
	RevenueByCategory  map[string]decimal.Decimal `json:"revenue_by_category"`
	RevenueByJobTitle  map[string]decimal.Decimal `json:"revenue_by_job_title"`
	RevenueByStaffName map[string]decimal.Decimal `json:"revenue_by_staff_name"`
	HourlyInsights     []HourlyInsight            `json:"hourly_insights"`
}
