package pos

import "time"

// Plain value records re-expressed from the provider payloads at the adapter boundary.
// Monetary fields are integer minor currency units (cents). A nil pointer means the
// provider did not send the field.

const OrderStateCompleted = "COMPLETED"

type Order struct {
	ID             string
	State          string
	ClosedAt       *time.Time
	LineItems      []LineItem
	ServiceCharges []int64
	TotalMoney     *int64
	TipMoney       *int64 // net_amounts.tip_money
}

// IsCustomAmount reports an order rung up without catalog line items
func (o Order) IsCustomAmount() bool {
	return len(o.LineItems) == 0 && o.TotalMoney != nil
}

type LineItem struct {
	CatalogObjectID *string
	Quantity        string // decimal string as sent by the provider
	GrossSalesMoney *int64
	TotalMoney      *int64
}

// Shift is an actual (timecard) shift. A nil EndAt means the shift is still open.
type Shift struct {
	ID           string
	TeamMemberID *string
	StartAt      *time.Time
	EndAt        *time.Time
}

type ShiftDetails struct {
	TeamMemberID *string
	StartAt      *time.Time
	EndAt        *time.Time
}

// ScheduledShift is a planned shift; published details take precedence over the draft.
type ScheduledShift struct {
	ID        string
	Published *ShiftDetails
	Draft     *ShiftDetails
}

// Details returns the published details, falling back to the draft.
func (s ScheduledShift) Details() *ShiftDetails {
	if s.Published != nil {
		return s.Published
	}
	return s.Draft
}

// TeamDirectory maps team member id to display name
type TeamDirectory map[string]string

// Name returns the display name for a team member or a placeholder built from the id.
func (d TeamDirectory) Name(teamMemberID *string) string {
	if teamMemberID == nil || *teamMemberID == "" {
		return "Unknown Team Member"
	}
	if name, ok := d[*teamMemberID]; ok && name != "" {
		return name
	}
	return "Team Member " + *teamMemberID
}

// CategoryMap maps catalog item variation id to category name
type CategoryMap map[string]string
