package shiftreport

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hospomate/hospomate-backend-go/internal/domain/pos"
	"github.com/hospomate/hospomate-backend-go/internal/domain/shiftreport"
	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/validator"
	"github.com/hospomate/hospomate-backend-go/internal/service/identity"
	insightService "github.com/hospomate/hospomate-backend-go/internal/service/insight"
	"github.com/shopspring/decimal"
)

const dateFmt = "2006-01-02"

type ShiftReportServiceImpl struct {
	storeRepo store.StoreRepository
	staffRepo store.StaffRepository
	gateway   pos.Gateway
}

func NewShiftReportService(
	storeRepo store.StoreRepository,
	staffRepo store.StaffRepository,
	gateway pos.Gateway,
) *ShiftReportServiceImpl {
	return &ShiftReportServiceImpl{
		storeRepo: storeRepo,
		staffRepo: staffRepo,
		gateway:   gateway,
	}
}

// GetShiftReport merges scheduled and actual shifts per (team member, date) and
// attaches daily sales of completed orders for the same window.
func (s *ShiftReportServiceImpl) GetShiftReport(ctx context.Context, storeID string, start, end string) (*shiftreport.Report, error) {
	if !validator.IsValidUUID(storeID) {
		return nil, store.ErrInvalidID
	}

	st, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	locationID := st.LocationID(s.gateway.DefaultLocationID())
	loc := insightService.StoreLocation(ctx, st, s.gateway, locationID)

	startAt, ok := validator.ParseDateTime(start, loc)
	if !ok {
		return nil, shiftreport.ErrInvalidDateTime
	}
	endAt, ok := validator.ParseDateTime(end, loc)
	if !ok {
		return nil, shiftreport.ErrInvalidDateTime
	}
	if !endAt.After(startAt) {
		return nil, shiftreport.ErrInvalidDateRange
	}

	staff, err := s.staffRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff: %w", err)
	}

	directory := s.gateway.TeamDirectory(ctx)
	scheduled := s.gateway.SearchScheduledShifts(ctx, locationID, startAt, endAt)
	actual := s.gateway.SearchShifts(ctx, locationID, startAt, endAt)
	orders := s.gateway.SearchOrders(ctx, locationID, startAt, endAt)

	rows := Reconcile(scheduled, actual, directory, identity.NewResolver(staff), loc)

	slog.Debug("Shift report reconciled",
		"store_id", storeID,
		"scheduled", len(scheduled),
		"actual", len(actual),
		"rows", len(rows),
	)

	return &shiftreport.Report{
		StoreID:    storeID,
		Start:      startAt,
		End:        endAt,
		Timezone:   loc.String(),
		Rows:       rows,
		DailySales: DailySales(orders, loc),
	}, nil
}

// Reconcile keys scheduled and actual shifts by team member and local date, computes
// the variance of every row and sorts by date descending then staff name.
func Reconcile(
	scheduled []pos.ScheduledShift,
	actual []pos.Shift,
	directory pos.TeamDirectory,
	resolver *identity.Resolver,
	loc *time.Location,
) []shiftreport.Row {
	byKey := make(map[string]*shiftreport.Row)
	var keys []string

	getRow := func(teamMemberID string, startAt time.Time) *shiftreport.Row {
		local := startAt.In(loc)
		date := local.Format(dateFmt)
		key := teamMemberID + "|" + date
		row, ok := byKey[key]
		if !ok {
			name := strings.TrimSpace(directory.Name(&teamMemberID))
			row = &shiftreport.Row{
				TeamMemberID: teamMemberID,
				StaffName:    name,
				JobTitle:     resolver.JobTitle(name),
				Date:         date,
				DayOfWeek:    strings.ToUpper(local.Weekday().String()),
			}
			byKey[key] = row
			keys = append(keys, key)
		}
		return row
	}

	for _, sched := range scheduled {
		details := sched.Details()
		if details == nil || details.TeamMemberID == nil || *details.TeamMemberID == "" || details.StartAt == nil {
			slog.Debug("Skipping scheduled shift without team member or start", "id", sched.ID)
			continue
		}
		row := getRow(*details.TeamMemberID, *details.StartAt)
		row.ScheduledStartTime = localPtr(details.StartAt, loc)
		row.ScheduledEndTime = localPtr(details.EndAt, loc)
	}

	for _, shift := range actual {
		if shift.TeamMemberID == nil || *shift.TeamMemberID == "" || shift.StartAt == nil {
			slog.Debug("Skipping timecard without team member or start", "id", shift.ID)
			continue
		}
		row := getRow(*shift.TeamMemberID, *shift.StartAt)
		row.ActualClockInTime = localPtr(shift.StartAt, loc)
		row.ActualClockOutTime = localPtr(shift.EndAt, loc)
	}

	rows := make([]shiftreport.Row, 0, len(keys))
	for _, key := range keys {
		row := byKey[key]
		row.VarianceMinutes = row.ActualMinutes() - row.ScheduledMinutes()
		rows = append(rows, *row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date > rows[j].Date
		}
		return rows[i].StaffName < rows[j].StaffName
	})

	return rows
}

// DailySales totals completed orders by their closing date in loc
func DailySales(orders []pos.Order, loc *time.Location) map[string]decimal.Decimal {
	sales := make(map[string]decimal.Decimal)
	for _, order := range orders {
		if order.State != pos.OrderStateCompleted || order.ClosedAt == nil || order.TotalMoney == nil {
			continue
		}
		date := order.ClosedAt.In(loc).Format(dateFmt)
		sales[date] = sales[date].Add(decimal.New(*order.TotalMoney, -2))
	}
	return sales
}

func localPtr(t *time.Time, loc *time.Location) *time.Time {
	if t == nil {
		return nil
	}
	local := t.In(loc)
	return &local
}
