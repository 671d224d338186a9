package insight

import (
	"strconv"
	"time"

	"github.com/hospomate/hospomate-backend-go/internal/domain/insight"
	"github.com/hospomate/hospomate-backend-go/internal/domain/pos"
	"github.com/hospomate/hospomate-backend-go/internal/service/identity"
	"github.com/shopspring/decimal"
)

const (
	CategoryUncategorized = "Uncategorized"
	CategorySurcharges    = "Surcharges"
	CategoryCustomAmount  = "Custom Amount"
)

// Calculator holds everything a bucket computation needs that is fixed for one store
// and one request. It performs no I/O, so it can be run for every hour of a week
// against data fetched once.
type Calculator struct {
	Threshold     decimal.Decimal
	Contributions ContributionTable
	Directory     pos.TeamDirectory
	Resolver      *identity.Resolver
	Now           time.Time // end used for shifts that are still open
}

// HourlyInsight computes the snapshot of [start, end).
func (c *Calculator) HourlyInsight(start, end time.Time, orders []pos.Order, shifts []pos.Shift, categoryMap pos.CategoryMap) insight.HourlyInsight {
	result := insight.HourlyInsight{
		StartTime:             start,
		EndTime:               end,
		TotalRevenue:          decimal.Zero,
		RevenueByCategory:     make(map[string]decimal.Decimal),
		RevenuePerStaffMember: decimal.Zero,
	}

	for _, order := range orders {
		if order.ClosedAt == nil || !inBucket(*order.ClosedAt, start, end) {
			continue
		}
		c.addOrder(&result, order, categoryMap)
	}

	active := ActiveShifts(shifts, start, end, c.Now)
	result.ActiveStaffCount = len(active)

	if result.ActiveStaffCount > 0 {
		result.RevenuePerStaffMember = result.TotalRevenue.DivRound(decimal.NewFromInt(int64(result.ActiveStaffCount)), 2)
		result.IsUnderutilised = result.RevenuePerStaffMember.LessThan(c.Threshold)
	}

	result.RevenueByJobTitle, result.RevenueByStaffName = Attribute(
		result.RevenueByCategory,
		active,
		c.Contributions,
		c.Directory,
		c.Resolver,
	)

	return result
}

func (c *Calculator) addOrder(result *insight.HourlyInsight, order pos.Order, categoryMap pos.CategoryMap) {
	if order.IsCustomAmount() {
		// total_money includes the tip, which is not revenue
		amount := fromCents(*order.TotalMoney)
		if order.TipMoney != nil {
			amount = amount.Sub(fromCents(*order.TipMoney))
		}
		result.TotalItemsSold++
		addRevenue(result, CategoryCustomAmount, amount)
		return
	}
	if len(order.LineItems) == 0 {
		return
	}

	for _, item := range order.LineItems {
		qty := parseQuantity(item.Quantity)

		category := CategoryUncategorized
		if item.CatalogObjectID != nil {
			if name, ok := categoryMap[*item.CatalogObjectID]; ok {
				category = name
			}
		}

		var itemRevenue decimal.Decimal
		switch {
		case item.GrossSalesMoney != nil:
			itemRevenue = fromCents(*item.GrossSalesMoney)
		case item.TotalMoney != nil:
			itemRevenue = fromCents(*item.TotalMoney)
		default:
			itemRevenue = decimal.Zero
		}

		result.TotalItemsSold += qty
		addRevenue(result, category, itemRevenue)
	}

	for _, charge := range order.ServiceCharges {
		addRevenue(result, CategorySurcharges, fromCents(charge))
	}
}

func addRevenue(result *insight.HourlyInsight, category string, amount decimal.Decimal) {
	result.TotalRevenue = result.TotalRevenue.Add(amount)
	result.RevenueByCategory[category] = result.RevenueByCategory[category].Add(amount)
}

// ActiveShifts returns the shifts overlapping [start, end). Shifts without a start are
// skipped; open shifts are treated as running until now. An empty range has none.
func ActiveShifts(shifts []pos.Shift, start, end, now time.Time) []pos.Shift {
	if !start.Before(end) {
		return nil
	}
	var active []pos.Shift
	for _, shift := range shifts {
		if shift.StartAt == nil {
			continue
		}
		shiftEnd := now
		if shift.EndAt != nil {
			shiftEnd = *shift.EndAt
		}
		if shift.StartAt.Before(end) && shiftEnd.After(start) {
			active = append(active, shift)
		}
	}
	return active
}

func inBucket(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

func parseQuantity(s string) int64 {
	qty, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 1
	}
	return qty
}

func fromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}
