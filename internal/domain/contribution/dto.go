package contribution

import (
	"github.com/hospomate/hospomate-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ContributionResponse represents a job role contribution row.
type ContributionResponse struct {
	ID                     string          `json:"id"`
	StoreID                string          `json:"store_id"`
	JobTitle               string          `json:"job_title"`
	CategoryName           string          `json:"category_name"`
	ContributionPercentage decimal.Decimal `json:"contribution_percentage"`
}

// CreateContributionRequest represents the request structure for creating a contribution.
type CreateContributionRequest struct {
	StoreID                string          `json:"-"` // From URL
	JobTitle               string          `json:"job_title"`
	CategoryName           string          `json:"category_name"`
	ContributionPercentage decimal.Decimal `json:"contribution_percentage"`
}

func (r *CreateContributionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.StoreID) {
		errs = append(errs, validator.ValidationError{
			Field:   "store_id",
			Message: "store_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title is required",
		})
	}
	if len(r.JobTitle) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.CategoryName) {
		errs = append(errs, validator.ValidationError{
			Field:   "category_name",
			Message: "category_name is required",
		})
	}

	if !validator.IsPercentage(r.ContributionPercentage) {
		errs = append(errs, validator.ValidationError{
			Field:   "contribution_percentage",
			Message: "contribution_percentage must be between 0 and 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func ToResponse(c JobRoleContribution) ContributionResponse {
	return ContributionResponse{
		ID:                     c.ID,
		StoreID:                c.StoreID,
		JobTitle:               c.JobTitle,
		CategoryName:           c.CategoryName,
		ContributionPercentage: c.ContributionPercentage,
	}
}
