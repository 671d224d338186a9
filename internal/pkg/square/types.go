package square

// Wire types for the subset of Square Connect v2 payloads the gateway reads.
// Unused fields are omitted; Square money amounts are integer minor units.

type money struct {
	Amount   *int64 `json:"amount"`
	Currency string `json:"currency"`
}

type timeRange struct {
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
}

type searchOrdersRequest struct {
	LocationIDs []string   `json:"location_ids"`
	Query       orderQuery `json:"query"`
	Limit       int        `json:"limit,omitempty"`
	Cursor      string     `json:"cursor,omitempty"`
}

type orderQuery struct {
	Filter orderFilter `json:"filter"`
	Sort   orderSort   `json:"sort"`
}

type orderFilter struct {
	StateFilter    orderStateFilter    `json:"state_filter"`
	DateTimeFilter orderDateTimeFilter `json:"date_time_filter"`
}

type orderStateFilter struct {
	States []string `json:"states"`
}

type orderDateTimeFilter struct {
	ClosedAt timeRange `json:"closed_at"`
}

type orderSort struct {
	SortField string `json:"sort_field"`
	SortOrder string `json:"sort_order"`
}

type searchOrdersResponse struct {
	Orders []order `json:"orders"`
	Cursor string  `json:"cursor"`
}

type order struct {
	ID             string          `json:"id"`
	State          string          `json:"state"`
	ClosedAt       string          `json:"closed_at"`
	LineItems      []lineItem      `json:"line_items"`
	ServiceCharges []serviceCharge `json:"service_charges"`
	TotalMoney     *money          `json:"total_money"`
	NetAmounts     *netAmounts     `json:"net_amounts"`
}

type lineItem struct {
	CatalogObjectID string `json:"catalog_object_id"`
	Quantity        string `json:"quantity"`
	GrossSalesMoney *money `json:"gross_sales_money"`
	TotalMoney      *money `json:"total_money"`
}

type serviceCharge struct {
	AmountMoney *money `json:"amount_money"`
}

type netAmounts struct {
	TipMoney *money `json:"tip_money"`
}

type searchShiftsRequest struct {
	Query  shiftQuery `json:"query"`
	Limit  int        `json:"limit,omitempty"`
	Cursor string     `json:"cursor,omitempty"`
}

type shiftQuery struct {
	Filter shiftFilter `json:"filter"`
}

type shiftFilter struct {
	LocationIDs []string  `json:"location_ids"`
	Start       timeRange `json:"start"`
}

type shift struct {
	ID           string `json:"id"`
	TeamMemberID string `json:"team_member_id"`
	StartAt      string `json:"start_at"`
	EndAt        string `json:"end_at"`
}

type searchShiftsResponse struct {
	Shifts []shift `json:"shifts"`
	Cursor string  `json:"cursor"`
}

type scheduledShiftDetails struct {
	TeamMemberID string `json:"team_member_id"`
	StartAt      string `json:"start_at"`
	EndAt        string `json:"end_at"`
}

type scheduledShift struct {
	ID                    string                 `json:"id"`
	DraftShiftDetails     *scheduledShiftDetails `json:"draft_shift_details"`
	PublishedShiftDetails *scheduledShiftDetails `json:"published_shift_details"`
}

type searchScheduledShiftsResponse struct {
	ScheduledShifts []scheduledShift `json:"scheduled_shifts"`
	Cursor          string           `json:"cursor"`
}

type searchTeamMembersRequest struct {
	Limit  int    `json:"limit,omitempty"`
	Cursor string `json:"cursor,omitempty"`
}

type teamMember struct {
	ID         string `json:"id"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

type searchTeamMembersResponse struct {
	TeamMembers []teamMember `json:"team_members"`
	Cursor      string       `json:"cursor"`
}

type catalogObject struct {
	Type         string        `json:"type"`
	ID           string        `json:"id"`
	ItemData     *itemData     `json:"item_data"`
	CategoryData *categoryData `json:"category_data"`
}

type categoryRef struct {
	ID string `json:"id"`
}

type itemData struct {
	Name              string          `json:"name"`
	CategoryID        string          `json:"category_id"`
	Categories        []categoryRef   `json:"categories"`
	ReportingCategory *categoryRef    `json:"reporting_category"`
	Variations        []catalogObject `json:"variations"`
}

type categoryData struct {
	Name string `json:"name"`
}

type listCatalogResponse struct {
	Objects []catalogObject `json:"objects"`
	Cursor  string          `json:"cursor"`
}

type teamMemberWage struct {
	ID           string `json:"id"`
	TeamMemberID string `json:"team_member_id"`
	Title        string `json:"title"`
	HourlyRate   *money `json:"hourly_rate"`
}

type listWagesResponse struct {
	TeamMemberWages []teamMemberWage `json:"team_member_wages"`
	Cursor          string           `json:"cursor"`
}

type location struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
}

type retrieveLocationResponse struct {
	Location location `json:"location"`
}
