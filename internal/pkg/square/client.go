package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const (
	ProductionBaseURL = "https://connect.squareup.com"
	SandboxBaseURL    = "https://connect.squareupsandbox.com"

	defaultAPIVersion = "2024-06-04"
	defaultPageLimit  = 50
)

// Options configures a Client. HTTPClient is the base client whose transport carries
// the authorised requests; it defaults to http.DefaultClient.
type Options struct {
	AccessToken string
	Environment string
	BaseURL     string
	APIVersion  string
	PageLimit   int
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Client is a minimal Square Connect v2 client covering the endpoints used for
// revenue and labour reporting.
type Client struct {
	baseURL    string
	apiVersion string
	pageLimit  int
	http       *http.Client
}

func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = SandboxBaseURL
		if strings.EqualFold(opts.Environment, "production") {
			baseURL = ProductionBaseURL
		}
	}
	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	pageLimit := opts.PageLimit
	if pageLimit <= 0 {
		pageLimit = defaultPageLimit
	}

	base := opts.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: opts.AccessToken,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = opts.Timeout

	return &Client{
		baseURL:    baseURL,
		apiVersion: apiVersion,
		pageLimit:  pageLimit,
		http:       httpClient,
	}
}

// APIError is a non-2xx response from Square
type APIError struct {
	StatusCode int
	Errors     []apiErrorDetail
}

type apiErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("square api error: status %d", e.StatusCode)
	}
	first := e.Errors[0]
	return fmt.Sprintf("square api error: status %d: %s %s: %s", e.StatusCode, first.Category, first.Code, first.Detail)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Square-Version", c.apiVersion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Errors []apiErrorDetail `json:"errors"`
		}
		if json.NewDecoder(resp.Body).Decode(&envelope) == nil {
			apiErr.Errors = envelope.Errors
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) searchOrders(ctx context.Context, req searchOrdersRequest) (searchOrdersResponse, error) {
	var resp searchOrdersResponse
	err := c.do(ctx, http.MethodPost, "/v2/orders/search", nil, req, &resp)
	return resp, err
}

func (c *Client) searchShifts(ctx context.Context, req searchShiftsRequest) (searchShiftsResponse, error) {
	var resp searchShiftsResponse
	err := c.do(ctx, http.MethodPost, "/v2/labor/shifts/search", nil, req, &resp)
	return resp, err
}

func (c *Client) searchScheduledShifts(ctx context.Context, req searchShiftsRequest) (searchScheduledShiftsResponse, error) {
	var resp searchScheduledShiftsResponse
	err := c.do(ctx, http.MethodPost, "/v2/labor/scheduled-shifts/search", nil, req, &resp)
	return resp, err
}

func (c *Client) searchTeamMembers(ctx context.Context, req searchTeamMembersRequest) (searchTeamMembersResponse, error) {
	var resp searchTeamMembersResponse
	err := c.do(ctx, http.MethodPost, "/v2/team-members/search", nil, req, &resp)
	return resp, err
}

func (c *Client) listCatalog(ctx context.Context, types []string, cursor string) (listCatalogResponse, error) {
	query := url.Values{"types": {strings.Join(types, ",")}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	var resp listCatalogResponse
	err := c.do(ctx, http.MethodGet, "/v2/catalog/list", query, nil, &resp)
	return resp, err
}

func (c *Client) listTeamMemberWages(ctx context.Context, cursor string) (listWagesResponse, error) {
	query := url.Values{"limit": {strconv.Itoa(c.pageLimit)}}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	var resp listWagesResponse
	err := c.do(ctx, http.MethodGet, "/v2/labor/team-member-wages", query, nil, &resp)
	return resp, err
}

func (c *Client) retrieveLocation(ctx context.Context, locationID string) (retrieveLocationResponse, error) {
	var resp retrieveLocationResponse
	err := c.do(ctx, http.MethodGet, "/v2/locations/"+url.PathEscape(locationID), nil, nil, &resp)
	return resp, err
}
