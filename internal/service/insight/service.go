package insight

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/domain/insight"
	"github.com/hospomate/hospomate-backend-go/internal/domain/pos"
	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/cache"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/validator"
	"github.com/hospomate/hospomate-backend-go/internal/service/identity"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	daysPerWeek  = 7
	hoursPerDay  = 24
	cacheKeySep  = "|"
	weekStartFmt = "2006-01-02"

	defaultLoadTimeout = 2 * time.Minute
)

type InsightServiceImpl struct {
	storeRepo        store.StoreRepository
	staffRepo        store.StaffRepository
	contributionRepo contribution.ContributionRepository
	gateway          pos.Gateway
	cache            *cache.Cache[*insight.WeeklyDashboard]
	loadTimeout      time.Duration
	now              func() time.Time
}

func NewInsightService(
	storeRepo store.StoreRepository,
	staffRepo store.StaffRepository,
	contributionRepo contribution.ContributionRepository,
	gateway pos.Gateway,
	dashboardCache *cache.Cache[*insight.WeeklyDashboard],
) *InsightServiceImpl {
	return &InsightServiceImpl{
		storeRepo:        storeRepo,
		staffRepo:        staffRepo,
		contributionRepo: contributionRepo,
		gateway:          gateway,
		cache:            dashboardCache,
		loadTimeout:      defaultLoadTimeout,
		now:              time.Now,
	}
}

// GetWeeklyDashboard returns the cached dashboard for (storeID, weekStart) or computes it.
func (s *InsightServiceImpl) GetWeeklyDashboard(ctx context.Context, storeID string, weekStart string) (*insight.WeeklyDashboard, error) {
	if !validator.IsValidUUID(storeID) {
		return nil, store.ErrInvalidID
	}
	date, ok := validator.IsValidDate(weekStart)
	if !ok {
		return nil, insight.ErrInvalidWeekStart
	}

	key := storeID + cacheKeySep + weekStart
	dashboard, hit, err := s.cache.GetOrLoad(key, func() (*insight.WeeklyDashboard, error) {
		// The result is shared with every waiter and cached, so it must not depend on
		// whether the first caller is still connected.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.loadTimeout)
		defer cancel()
		return s.buildWeeklyDashboard(loadCtx, storeID, date)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		slog.Debug("Weekly dashboard served from cache", "store_id", storeID, "week_start", weekStart)
	}
	return dashboard, nil
}

// InvalidateStore drops all cached weeks of a store
func (s *InsightServiceImpl) InvalidateStore(storeID string) {
	removed := s.cache.DeletePrefix(storeID + cacheKeySep)
	slog.Debug("Weekly dashboards invalidated", "store_id", storeID, "removed", removed)
}

// ComputeHourlyInsight computes one bucket for a store from data the caller already
// fetched. It reads the store configuration but never calls the POS.
func (s *InsightServiceImpl) ComputeHourlyInsight(
	ctx context.Context,
	storeID string,
	start, end time.Time,
	orders []pos.Order,
	shifts []pos.Shift,
	categoryMap pos.CategoryMap,
	directory pos.TeamDirectory,
) (insight.HourlyInsight, error) {
	st, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return insight.HourlyInsight{}, err
	}
	contributions, err := s.contributionRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		return insight.HourlyInsight{}, fmt.Errorf("failed to load contributions: %w", err)
	}
	staff, err := s.staffRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		return insight.HourlyInsight{}, fmt.Errorf("failed to load staff: %w", err)
	}

	calc := s.newCalculator(st, contributions, staff, directory)
	return calc.HourlyInsight(start, end, orders, shifts, categoryMap), nil
}

func (s *InsightServiceImpl) newCalculator(
	st store.Store,
	contributions []contribution.JobRoleContribution,
	staff []store.Staff,
	directory pos.TeamDirectory,
) *Calculator {
	return &Calculator{
		Threshold:     st.Threshold(),
		Contributions: NewContributionTable(contributions),
		Directory:     directory,
		Resolver:      identity.NewResolver(staff),
		Now:           s.now(),
	}
}

// weekData is everything fetched once for a dashboard computation
type weekData struct {
	contributions []contribution.JobRoleContribution
	staff         []store.Staff
	orders        []pos.Order
	shifts        []pos.Shift
	directory     pos.TeamDirectory
	categoryMap   pos.CategoryMap
}

func (s *InsightServiceImpl) fetchWeek(ctx context.Context, storeID, locationID string, start, end time.Time) (*weekData, error) {
	var data weekData

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := s.contributionRepo.ListByStoreID(gCtx, storeID)
		if err != nil {
			return fmt.Errorf("failed to load contributions: %w", err)
		}
		data.contributions = rows
		return nil
	})

	g.Go(func() error {
		staff, err := s.staffRepo.ListByStoreID(gCtx, storeID)
		if err != nil {
			return fmt.Errorf("failed to load staff: %w", err)
		}
		data.staff = staff
		return nil
	})

	// POS calls degrade to empty data and never fail the group
	g.Go(func() error {
		data.orders = s.gateway.SearchOrders(gCtx, locationID, start, end)
		return nil
	})
	g.Go(func() error {
		data.shifts = s.gateway.SearchShifts(gCtx, locationID, start, end)
		return nil
	})
	g.Go(func() error {
		data.directory = s.gateway.TeamDirectory(gCtx)
		return nil
	})
	g.Go(func() error {
		data.categoryMap = s.gateway.CategoryMap(gCtx)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

func (s *InsightServiceImpl) buildWeeklyDashboard(ctx context.Context, storeID string, weekStart time.Time) (*insight.WeeklyDashboard, error) {
	st, err := s.storeRepo.GetByID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	locationID := st.LocationID(s.gateway.DefaultLocationID())
	loc := StoreLocation(ctx, st, s.gateway, locationID)

	globalStart := wallClockHour(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, loc)
	globalEnd := wallClockHour(weekStart.Year(), weekStart.Month(), weekStart.Day()+daysPerWeek, 0, loc)

	data, err := s.fetchWeek(ctx, storeID, locationID, globalStart, globalEnd)
	if err != nil {
		return nil, err
	}
	// gateway calls degrade to empty data on cancellation, which must not be cached
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("failed to fetch POS data for week: %w", err)
	}
	slog.Debug("Fetched POS data for week",
		"store_id", storeID,
		"week_start", weekStart.Format(weekStartFmt),
		"orders", len(data.orders),
		"shifts", len(data.shifts),
		"team_members", len(data.directory),
		"catalog_variations", len(data.categoryMap),
	)

	calc := s.newCalculator(st, data.contributions, data.staff, data.directory)

	opening, closing := st.TradingHours()
	dashboard := &insight.WeeklyDashboard{
		StoreID:            storeID,
		WeekStart:          weekStart.Format(weekStartFmt),
		Timezone:           loc.String(),
		OpeningTime:        opening,
		ClosingTime:        closing,
		TotalRevenue:       decimal.Zero,
		RevenueByDay:       make(map[string]decimal.Decimal, daysPerWeek),
		RevenueByCategory:  make(map[string]decimal.Decimal),
		RevenueByJobTitle:  make(map[string]decimal.Decimal),
		RevenueByStaffName: make(map[string]decimal.Decimal),
		HourlyInsights:     make([]insight.HourlyInsight, 0, daysPerWeek*hoursPerDay),
	}

	// All 24 hours are analysed so sales outside trading hours still count. Buckets
	// follow the wall clock: a skipped DST hour is empty and a repeated one spans both.
	start := globalStart
	for d := 0; d < daysPerWeek; d++ {
		day := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day()+d, 0, 0, 0, 0, time.UTC)
		dailyRevenue := decimal.Zero

		for h := 0; h < hoursPerDay; h++ {
			end := wallClockHour(day.Year(), day.Month(), day.Day(), h+1, loc)

			hourly := calc.HourlyInsight(start, end, data.orders, data.shifts, data.categoryMap)
			dashboard.HourlyInsights = append(dashboard.HourlyInsights, hourly)

			dailyRevenue = dailyRevenue.Add(hourly.TotalRevenue)
			dashboard.TotalRevenue = dashboard.TotalRevenue.Add(hourly.TotalRevenue)
			dashboard.TotalItemsSold += hourly.TotalItemsSold
			if hourly.IsUnderutilised {
				dashboard.UnderutilisedHours++
			}
			mergeInto(dashboard.RevenueByCategory, hourly.RevenueByCategory)
			mergeInto(dashboard.RevenueByJobTitle, hourly.RevenueByJobTitle)
			mergeInto(dashboard.RevenueByStaffName, hourly.RevenueByStaffName)
			start = end
		}

		dashboard.RevenueByDay[strings.ToUpper(day.Weekday().String())] = dailyRevenue
	}

	return dashboard, nil
}

// StoreLocation picks the store's timezone override, then the POS location zone
// (which itself falls back to the configured default).
func StoreLocation(ctx context.Context, st store.Store, gateway pos.Gateway, locationID string) *time.Location {
	loc, err := st.TimezoneOverride()
	if err != nil {
		slog.Warn("Invalid store timezone, using POS location timezone", "store_id", st.ID, "error", err)
	}
	if loc != nil {
		return loc
	}
	return gateway.LocationTimezone(ctx, locationID)
}

func mergeInto(dst, src map[string]decimal.Decimal) {
	for k, v := range src {
		dst[k] = dst[k].Add(v)
	}
}
