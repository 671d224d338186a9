package shiftreport

import (
	"time"

	"github.com/shopspring/decimal"
)

// Row reconciles the scheduled and actual shift of one team member on one date
type Row struct {
	TeamMemberID       string     `json:"team_member_id"`
	StaffName          string     `json:"staff_name"`
	JobTitle           string     `json:"job_title"`
	Date               string     `json:"date"` // YYYY-MM-DD in the location zone
	DayOfWeek          string     `json:"day_of_week"`
	ScheduledStartTime *time.Time `json:"scheduled_start_time"`
	ScheduledEndTime   *time.Time `json:"scheduled_end_time"`
	ActualClockInTime  *time.Time `json:"actual_clock_in_time"`
	ActualClockOutTime *time.Time `json:"actual_clock_out_time"`
	VarianceMinutes    int64      `json:"variance_minutes"`
}

// ScheduledMinutes is zero unless both scheduled timestamps are present
func (r Row) ScheduledMinutes() int64 {
	return minutesBetween(r.ScheduledStartTime, r.ScheduledEndTime)
}

// ActualMinutes is zero unless both clock timestamps are present
func (r Row) ActualMinutes() int64 {
	return minutesBetween(r.ActualClockInTime, r.ActualClockOutTime)
}

func minutesBetween(start, end *time.Time) int64 {
	if start == nil || end == nil {
		return 0
	}
	return int64(end.Sub(*start) / time.Minute)
}

type Report struct {
	StoreID    string                     `json:"store_id"`
	Start      time.Time                  `json:"start"`
	End        time.Time                  `json:"end"`
	Timezone   string                     `json:"timezone"`
	Rows       []Row                      `json:"rows"`
	DailySales map[string]decimal.Decimal `json:"daily_sales"` // YYYY-MM-DD -> completed sales
}
