package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "EAAA-test-token"

func newTestGateway(t *testing.T, mux *http.ServeMux) *Gateway {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClient(Options{
		AccessToken: testToken,
		BaseURL:     server.URL,
		APIVersion:  "2024-06-04",
		PageLimit:   2,
		Timeout:     5 * time.Second,
		HTTPClient:  server.Client(),
	})
	return NewGateway(client, "LOC-MAIN", time.UTC)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := w.Write([]byte(body))
	assert.NoError(t, err)
}

func TestNewClient_BaseURL(t *testing.T) {
	assert.Equal(t, SandboxBaseURL, NewClient(Options{}).baseURL)
	assert.Equal(t, ProductionBaseURL, NewClient(Options{Environment: "production"}).baseURL)
	assert.Equal(t, "http://localhost:9999", NewClient(Options{Environment: "production", BaseURL: "http://localhost:9999/"}).baseURL)
	assert.Equal(t, defaultPageLimit, NewClient(Options{}).pageLimit)
}

func TestSearchOrders_PaginatesAndConverts(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/orders/search", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "Bearer "+testToken, r.Header.Get("Authorization"))
		assert.Equal(t, "2024-06-04", r.Header.Get("Square-Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req searchOrdersRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"LOC-1"}, req.LocationIDs)
		assert.Equal(t, "2024-06-03T00:00:00Z", req.Query.Filter.DateTimeFilter.ClosedAt.StartAt)
		assert.Equal(t, "2024-06-10T00:00:00Z", req.Query.Filter.DateTimeFilter.ClosedAt.EndAt)
		assert.Equal(t, "CLOSED_AT", req.Query.Sort.SortField)
		assert.Equal(t, 2, req.Limit)

		if req.Cursor == "" {
			writeJSON(t, w, http.StatusOK, `{
				"orders": [{
					"id": "o1",
					"state": "COMPLETED",
					"closed_at": "2024-06-03T10:05:00.123Z",
					"line_items": [
						{"catalog_object_id": "var-1", "quantity": "2", "gross_sales_money": {"amount": 1500, "currency": "AUD"}},
						{"quantity": "1", "total_money": {"amount": 300, "currency": "AUD"}}
					],
					"service_charges": [{"amount_money": {"amount": 150, "currency": "AUD"}}],
					"total_money": {"amount": 1950, "currency": "AUD"}
				}],
				"cursor": "page-2"
			}`)
			return
		}
		assert.Equal(t, "page-2", req.Cursor)
		writeJSON(t, w, http.StatusOK, `{
			"orders": [{
				"id": "o2",
				"state": "COMPLETED",
				"closed_at": "2024-06-04T12:00:00Z",
				"total_money": {"amount": 1200, "currency": "AUD"},
				"net_amounts": {"tip_money": {"amount": 200, "currency": "AUD"}}
			}]
		}`)
	})

	gateway := newTestGateway(t, mux)
	start := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

	orders := gateway.SearchOrders(context.Background(), "LOC-1", start, start.AddDate(0, 0, 7))

	require.Len(t, orders, 2)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))

	first := orders[0]
	require.NotNil(t, first.ClosedAt)
	assert.True(t, first.ClosedAt.Equal(time.Date(2024, 6, 3, 10, 5, 0, 123000000, time.UTC)))
	require.Len(t, first.LineItems, 2)
	assert.Equal(t, "var-1", *first.LineItems[0].CatalogObjectID)
	assert.Equal(t, int64(1500), *first.LineItems[0].GrossSalesMoney)
	assert.Nil(t, first.LineItems[1].CatalogObjectID)
	assert.Nil(t, first.LineItems[1].GrossSalesMoney)
	assert.Equal(t, int64(300), *first.LineItems[1].TotalMoney)
	assert.Equal(t, []int64{150}, first.ServiceCharges)
	assert.Nil(t, first.TipMoney)

	second := orders[1]
	assert.True(t, second.IsCustomAmount())
	assert.Equal(t, int64(200), *second.TipMoney)
}

func TestSearchOrders_FailedPageKeepsEarlierPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/orders/search", func(w http.ResponseWriter, r *http.Request) {
		var req searchOrdersRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Cursor == "" {
			writeJSON(t, w, http.StatusOK, `{"orders": [{"id": "o1", "closed_at": "2024-06-03T10:00:00Z"}], "cursor": "next"}`)
			return
		}
		writeJSON(t, w, http.StatusInternalServerError, `{"errors": [{"category": "API_ERROR", "code": "INTERNAL_SERVER_ERROR", "detail": "boom"}]}`)
	})

	gateway := newTestGateway(t, mux)
	orders := gateway.SearchOrders(context.Background(), "LOC-1", time.Now().Add(-time.Hour), time.Now())

	require.Len(t, orders, 1)
	assert.Equal(t, "o1", orders[0].ID)
}

func TestSearchOrders_ProviderDownReturnsEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/orders/search", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, `{"errors": [{"category": "AUTHENTICATION_ERROR", "code": "UNAUTHORIZED"}]}`)
	})

	gateway := newTestGateway(t, mux)
	assert.Empty(t, gateway.SearchOrders(context.Background(), "LOC-1", time.Now().Add(-time.Hour), time.Now()))
}

func TestSearchShifts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/labor/shifts/search", func(w http.ResponseWriter, r *http.Request) {
		var req searchShiftsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"LOC-1"}, req.Query.Filter.LocationIDs)
		assert.NotEmpty(t, req.Query.Filter.Start.StartAt)

		writeJSON(t, w, http.StatusOK, `{"shifts": [
			{"id": "s1", "team_member_id": "tm1", "start_at": "2024-06-03T09:00:00+10:00", "end_at": "2024-06-03T17:00:00+10:00"},
			{"id": "s2", "team_member_id": "tm2", "start_at": "2024-06-03T18:00:00Z"},
			{"id": "s3", "start_at": "not-a-time"}
		]}`)
	})

	gateway := newTestGateway(t, mux)
	shifts := gateway.SearchShifts(context.Background(), "LOC-1", time.Now().Add(-time.Hour), time.Now())

	require.Len(t, shifts, 3)
	assert.True(t, shifts[0].StartAt.Equal(time.Date(2024, 6, 2, 23, 0, 0, 0, time.UTC)))
	assert.Nil(t, shifts[1].EndAt)
	assert.Nil(t, shifts[2].TeamMemberID)
	assert.Nil(t, shifts[2].StartAt)
}

func TestSearchScheduledShifts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/labor/scheduled-shifts/search", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"scheduled_shifts": [
			{
				"id": "sch1",
				"draft_shift_details": {"team_member_id": "tm1", "start_at": "2024-06-03T08:00:00Z", "end_at": "2024-06-03T12:00:00Z"},
				"published_shift_details": {"team_member_id": "tm1", "start_at": "2024-06-03T09:00:00Z", "end_at": "2024-06-03T13:00:00Z"}
			},
			{
				"id": "sch2",
				"draft_shift_details": {"team_member_id": "tm2", "start_at": "2024-06-04T08:00:00Z"}
			}
		]}`)
	})

	gateway := newTestGateway(t, mux)
	shifts := gateway.SearchScheduledShifts(context.Background(), "LOC-1", time.Now().Add(-time.Hour), time.Now())

	require.Len(t, shifts, 2)
	require.NotNil(t, shifts[0].Details())
	assert.True(t, shifts[0].Details().StartAt.Equal(time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)))
	assert.Nil(t, shifts[1].Published)
	assert.Equal(t, "tm2", *shifts[1].Details().TeamMemberID)
}

func TestTeamDirectory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v2/team-members/search", func(w http.ResponseWriter, r *http.Request) {
		var req searchTeamMembersRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Cursor == "" {
			writeJSON(t, w, http.StatusOK, `{"team_members": [
				{"id": "tm1", "given_name": "Ann", "family_name": "Lee"},
				{"id": "tm2", "given_name": "Bob"}
			], "cursor": "c2"}`)
			return
		}
		writeJSON(t, w, http.StatusOK, `{"team_members": [{"id": "tm3", "family_name": "Diaz"}, {"given_name": "No Id"}]}`)
	})

	gateway := newTestGateway(t, mux)
	directory := gateway.TeamDirectory(context.Background())

	assert.Len(t, directory, 3)
	assert.Equal(t, "Ann Lee", directory["tm1"])
	assert.Equal(t, "Bob", directory["tm2"])
	assert.Equal(t, "Diaz", directory["tm3"])
}

func catalogMux(t *testing.T) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v2/catalog/list", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ITEM,CATEGORY", r.URL.Query().Get("types"))
		if r.URL.Query().Get("cursor") == "" {
			writeJSON(t, w, http.StatusOK, `{"objects": [
				{"type": "CATEGORY", "id": "cat-drinks", "category_data": {"name": "Drinks"}},
				{"type": "ITEM", "id": "item-beer", "item_data": {
					"name": "Beer",
					"categories": [{"id": "cat-drinks"}],
					"variations": [{"type": "ITEM_VARIATION", "id": "var-schooner"}, {"type": "ITEM_VARIATION", "id": "var-pint"}]
				}},
				{"type": "ITEM", "id": "item-chips", "item_data": {
					"name": "Chips",
					"category_id": "cat-food",
					"variations": [{"type": "ITEM_VARIATION", "id": "var-chips"}]
				}}
			], "cursor": "more"}`)
			return
		}
		writeJSON(t, w, http.StatusOK, `{"objects": [
			{"type": "CATEGORY", "id": "cat-food", "category_data": {"name": "Food"}},
			{"type": "CATEGORY", "id": "cat-dup", "category_data": {"name": "Drinks"}},
			{"type": "ITEM", "id": "item-misc", "item_data": {"name": "Misc", "variations": [{"id": "var-misc"}]}}
		]}`)
	})
	return mux
}

func TestCategoryMap(t *testing.T) {
	gateway := newTestGateway(t, catalogMux(t))

	categoryMap := gateway.CategoryMap(context.Background())

	assert.Equal(t, "Drinks", categoryMap["var-schooner"])
	assert.Equal(t, "Drinks", categoryMap["var-pint"])
	assert.Equal(t, "Food", categoryMap["var-chips"])
	_, ok := categoryMap["var-misc"]
	assert.False(t, ok)
}

func TestCategoryNames(t *testing.T) {
	gateway := newTestGateway(t, catalogMux(t))

	assert.Equal(t, []string{"Drinks", "Food"}, gateway.CategoryNames(context.Background()))
}

func TestJobTitles(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v2/labor/team-member-wages", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		writeJSON(t, w, http.StatusOK, `{"team_member_wages": [
			{"id": "w1", "team_member_id": "tm1", "title": "Bartender"},
			{"id": "w2", "team_member_id": "tm2", "title": "Chef"},
			{"id": "w3", "team_member_id": "tm3", "title": "Bartender"},
			{"id": "w4", "team_member_id": "tm4", "title": "  "}
		]}`)
	})

	gateway := newTestGateway(t, mux)
	assert.Equal(t, []string{"Bartender", "Chef"}, gateway.JobTitles(context.Background()))
}

func TestLocationTimezone(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v2/locations/{id}", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		switch r.PathValue("id") {
		case "LOC-MEL":
			writeJSON(t, w, http.StatusOK, `{"location": {"id": "LOC-MEL", "timezone": "Australia/Melbourne"}}`)
		case "LOC-BAD":
			writeJSON(t, w, http.StatusOK, `{"location": {"id": "LOC-BAD", "timezone": "Mars/Olympus"}}`)
		default:
			writeJSON(t, w, http.StatusNotFound, `{"errors": [{"category": "INVALID_REQUEST_ERROR", "code": "NOT_FOUND"}]}`)
		}
	})

	gateway := newTestGateway(t, mux)
	ctx := context.Background()

	assert.Equal(t, "Australia/Melbourne", gateway.LocationTimezone(ctx, "LOC-MEL").String())
	assert.Equal(t, "Australia/Melbourne", gateway.LocationTimezone(ctx, "LOC-MEL").String())
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	assert.Equal(t, time.UTC, gateway.LocationTimezone(ctx, "LOC-BAD"))
	assert.Equal(t, time.UTC, gateway.LocationTimezone(ctx, "LOC-GONE"))
}

func TestAPIError(t *testing.T) {
	err := &APIError{StatusCode: 400, Errors: []apiErrorDetail{{Category: "INVALID_REQUEST_ERROR", Code: "VALUE_TOO_HIGH", Detail: "limit"}}}
	assert.Equal(t, "square api error: status 400: INVALID_REQUEST_ERROR VALUE_TOO_HIGH: limit", err.Error())
	assert.Equal(t, "square api error: status 502", (&APIError{StatusCode: 502}).Error())
}
