package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

// JobRoleContribution maps a share of a POS category's revenue to a job title.
// Percentages are stored 0-100 and are not normalised per category.
type JobRoleContribution struct {
	ID                     string
	StoreID                string
	JobTitle               string
	CategoryName           string
	ContributionPercentage decimal.Decimal
	CreatedAt              time.Time
}
