package response

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hospomate/hospomate-backend-go/internal/domain/auth"
	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/domain/insight"
	"github.com/hospomate/hospomate-backend-go/internal/domain/shiftreport"
	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Store domain errors
	case errors.Is(err, store.ErrInvalidID):
		BadRequest(w, "Invalid store id", nil)
	case errors.Is(err, store.ErrStoreNotFound):
		NotFound(w, "Store not found")

	// Insight and shift report errors
	case errors.Is(err, insight.ErrInvalidWeekStart):
		BadRequest(w, err.Error(), map[string]string{"weekStart": "must be YYYY-MM-DD"})
	case errors.Is(err, shiftreport.ErrInvalidDateTime):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, shiftreport.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)

	// Contribution domain errors
	case errors.Is(err, contribution.ErrContributionNotFound):
		NotFound(w, "Job role contribution not found")
	case errors.Is(err, contribution.ErrContributionExists):
		Conflict(w, "Contribution for this job title and category already exists")

	// The weekly dashboard load has its own deadline
	case errors.Is(err, context.DeadlineExceeded):
		slog.Warn("Request timed out", "error", err)
		GatewayTimeout(w, "Timed out fetching POS data, try again")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
