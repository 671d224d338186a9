package square

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/hospomate/hospomate-backend-go/internal/domain/pos"
)

// maxPages bounds a paginated call in case the provider keeps returning a cursor
const maxPages = 1000

var closedOrderStates = []string{"COMPLETED", "CANCELED"}

// Gateway adapts Square payloads to the pos records. Calls never fail: errors are
// logged and the data gathered before the failure is returned.
type Gateway struct {
	client      *Client
	locationID  string
	defaultZone *time.Location

	mu    sync.RWMutex
	zones map[string]*time.Location
}

func NewGateway(client *Client, locationID string, defaultZone *time.Location) *Gateway {
	if defaultZone == nil {
		defaultZone = time.UTC
	}
	return &Gateway{
		client:      client,
		locationID:  locationID,
		defaultZone: defaultZone,
		zones:       make(map[string]*time.Location),
	}
}

var _ pos.Gateway = (*Gateway)(nil)

// paginate follows cursors until the provider stops returning one. A failed page ends
// the walk; what was gathered so far is kept.
func paginate(ctx context.Context, call string, locationID string, fetch func(cursor string) (string, error)) {
	cursor := ""
	for page := 1; page <= maxPages; page++ {
		next, err := fetch(cursor)
		if err != nil {
			slog.Warn("POS call failed, returning partial data",
				"call", call,
				"location_id", locationID,
				"page", page,
				"error", err,
			)
			return
		}
		if next == "" {
			return
		}
		if ctx.Err() != nil {
			slog.Warn("POS call cancelled, returning partial data", "call", call, "page", page, "error", ctx.Err())
			return
		}
		cursor = next
	}
	slog.Warn("POS call hit page limit", "call", call, "location_id", locationID, "pages", maxPages)
}

func (g *Gateway) DefaultLocationID() string {
	return g.locationID
}

func (g *Gateway) SearchOrders(ctx context.Context, locationID string, start, end time.Time) []pos.Order {
	var orders []pos.Order
	paginate(ctx, "search_orders", locationID, func(cursor string) (string, error) {
		resp, err := g.client.searchOrders(ctx, searchOrdersRequest{
			LocationIDs: []string{locationID},
			Query: orderQuery{
				Filter: orderFilter{
					StateFilter: orderStateFilter{States: closedOrderStates},
					DateTimeFilter: orderDateTimeFilter{
						ClosedAt: newTimeRange(start, end),
					},
				},
				Sort: orderSort{SortField: "CLOSED_AT", SortOrder: "ASC"},
			},
			Limit:  g.client.pageLimit,
			Cursor: cursor,
		})
		if err != nil {
			return "", err
		}
		for _, o := range resp.Orders {
			orders = append(orders, toOrder(o))
		}
		return resp.Cursor, nil
	})
	return orders
}

func (g *Gateway) SearchShifts(ctx context.Context, locationID string, start, end time.Time) []pos.Shift {
	var shifts []pos.Shift
	paginate(ctx, "search_shifts", locationID, func(cursor string) (string, error) {
		resp, err := g.client.searchShifts(ctx, newShiftSearch(locationID, start, end, g.client.pageLimit, cursor))
		if err != nil {
			return "", err
		}
		for _, s := range resp.Shifts {
			shifts = append(shifts, pos.Shift{
				ID:           s.ID,
				TeamMemberID: optionalString(s.TeamMemberID),
				StartAt:      parseTime(s.StartAt),
				EndAt:        parseTime(s.EndAt),
			})
		}
		return resp.Cursor, nil
	})
	return shifts
}

func (g *Gateway) SearchScheduledShifts(ctx context.Context, locationID string, start, end time.Time) []pos.ScheduledShift {
	var shifts []pos.ScheduledShift
	paginate(ctx, "search_scheduled_shifts", locationID, func(cursor string) (string, error) {
		resp, err := g.client.searchScheduledShifts(ctx, newShiftSearch(locationID, start, end, g.client.pageLimit, cursor))
		if err != nil {
			return "", err
		}
		for _, s := range resp.ScheduledShifts {
			shifts = append(shifts, pos.ScheduledShift{
				ID:        s.ID,
				Published: toShiftDetails(s.PublishedShiftDetails),
				Draft:     toShiftDetails(s.DraftShiftDetails),
			})
		}
		return resp.Cursor, nil
	})
	return shifts
}

func (g *Gateway) TeamDirectory(ctx context.Context) pos.TeamDirectory {
	directory := make(pos.TeamDirectory)
	paginate(ctx, "search_team_members", g.locationID, func(cursor string) (string, error) {
		resp, err := g.client.searchTeamMembers(ctx, searchTeamMembersRequest{
			Limit:  g.client.pageLimit,
			Cursor: cursor,
		})
		if err != nil {
			return "", err
		}
		for _, tm := range resp.TeamMembers {
			if tm.ID == "" {
				continue
			}
			directory[tm.ID] = strings.TrimSpace(tm.GivenName + " " + tm.FamilyName)
		}
		return resp.Cursor, nil
	})
	return directory
}

// CategoryMap maps every item variation id to the name of its item's category.
// Items without a resolvable category are left out and count as uncategorised.
func (g *Gateway) CategoryMap(ctx context.Context) pos.CategoryMap {
	items, categories := g.listCatalog(ctx)

	categoryMap := make(pos.CategoryMap)
	for _, item := range items {
		if item.ItemData == nil {
			continue
		}
		name, ok := categories[itemCategoryID(item.ItemData)]
		if !ok {
			continue
		}
		for _, variation := range item.ItemData.Variations {
			if variation.ID != "" {
				categoryMap[variation.ID] = name
			}
		}
	}
	return categoryMap
}

func (g *Gateway) CategoryNames(ctx context.Context) []string {
	_, categories := g.listCatalog(ctx)

	names := make([]string, 0, len(categories))
	for _, name := range categories {
		names = append(names, name)
	}
	return distinctSorted(names)
}

func (g *Gateway) JobTitles(ctx context.Context) []string {
	var titles []string
	paginate(ctx, "list_team_member_wages", g.locationID, func(cursor string) (string, error) {
		resp, err := g.client.listTeamMemberWages(ctx, cursor)
		if err != nil {
			return "", err
		}
		for _, wage := range resp.TeamMemberWages {
			titles = append(titles, wage.Title)
		}
		return resp.Cursor, nil
	})
	return distinctSorted(titles)
}

// LocationTimezone looks the zone up once per location. Failed lookups fall back to
// the default zone and are retried on the next call.
func (g *Gateway) LocationTimezone(ctx context.Context, locationID string) *time.Location {
	g.mu.RLock()
	loc, ok := g.zones[locationID]
	g.mu.RUnlock()
	if ok {
		return loc
	}

	resp, err := g.client.retrieveLocation(ctx, locationID)
	if err != nil {
		slog.Warn("POS location lookup failed, using default timezone",
			"call", "retrieve_location",
			"location_id", locationID,
			"timezone", g.defaultZone.String(),
			"error", err,
		)
		return g.defaultZone
	}

	loc, err = time.LoadLocation(resp.Location.Timezone)
	if err != nil || resp.Location.Timezone == "" {
		slog.Warn("POS location has no usable timezone, using default",
			"location_id", locationID,
			"timezone", resp.Location.Timezone,
		)
		return g.defaultZone
	}

	g.mu.Lock()
	g.zones[locationID] = loc
	g.mu.Unlock()
	return loc
}

// listCatalog returns catalog items and a category id to name index
func (g *Gateway) listCatalog(ctx context.Context) ([]catalogObject, map[string]string) {
	var items []catalogObject
	categories := make(map[string]string)
	paginate(ctx, "list_catalog", g.locationID, func(cursor string) (string, error) {
		resp, err := g.client.listCatalog(ctx, []string{"ITEM", "CATEGORY"}, cursor)
		if err != nil {
			return "", err
		}
		for _, obj := range resp.Objects {
			switch obj.Type {
			case "ITEM":
				items = append(items, obj)
			case "CATEGORY":
				if obj.CategoryData != nil && obj.CategoryData.Name != "" {
					categories[obj.ID] = obj.CategoryData.Name
				}
			}
		}
		return resp.Cursor, nil
	})
	return items, categories
}

// itemCategoryID prefers the reporting category, then the legacy single category,
// then the first listed category.
func itemCategoryID(item *itemData) string {
	switch {
	case item.ReportingCategory != nil && item.ReportingCategory.ID != "":
		return item.ReportingCategory.ID
	case item.CategoryID != "":
		return item.CategoryID
	case len(item.Categories) > 0:
		return item.Categories[0].ID
	}
	return ""
}

func toOrder(o order) pos.Order {
	result := pos.Order{
		ID:         o.ID,
		State:      o.State,
		ClosedAt:   parseTime(o.ClosedAt),
		TotalMoney: amount(o.TotalMoney),
	}
	if o.NetAmounts != nil {
		result.TipMoney = amount(o.NetAmounts.TipMoney)
	}
	for _, li := range o.LineItems {
		result.LineItems = append(result.LineItems, pos.LineItem{
			CatalogObjectID: optionalString(li.CatalogObjectID),
			Quantity:        li.Quantity,
			GrossSalesMoney: amount(li.GrossSalesMoney),
			TotalMoney:      amount(li.TotalMoney),
		})
	}
	for _, sc := range o.ServiceCharges {
		if cents := amount(sc.AmountMoney); cents != nil {
			result.ServiceCharges = append(result.ServiceCharges, *cents)
		}
	}
	return result
}

func toShiftDetails(d *scheduledShiftDetails) *pos.ShiftDetails {
	if d == nil {
		return nil
	}
	return &pos.ShiftDetails{
		TeamMemberID: optionalString(d.TeamMemberID),
		StartAt:      parseTime(d.StartAt),
		EndAt:        parseTime(d.EndAt),
	}
}

func newShiftSearch(locationID string, start, end time.Time, limit int, cursor string) searchShiftsRequest {
	return searchShiftsRequest{
		Query: shiftQuery{
			Filter: shiftFilter{
				LocationIDs: []string{locationID},
				Start:       newTimeRange(start, end),
			},
		},
		Limit:  limit,
		Cursor: cursor,
	}
}

func newTimeRange(start, end time.Time) timeRange {
	return timeRange{
		StartAt: start.Format(time.RFC3339),
		EndAt:   end.Format(time.RFC3339),
	}
}

// parseTime returns nil for missing or malformed timestamps
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		slog.Debug("Ignoring malformed POS timestamp", "value", s, "error", err)
		return nil
	}
	return &t
}

func amount(m *money) *int64 {
	if m == nil {
		return nil
	}
	return m.Amount
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func distinctSorted(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}
	sort.Strings(result)
	return result
}
