package pos

import (
	"context"
	"time"
)

// Gateway fetches POS data for a location. Implementations follow pagination
// internally and never return provider errors: a failed call yields whatever was
// accumulated before the failure (possibly nothing) and is logged.
type Gateway interface {
	SearchOrders(ctx context.Context, locationID string, start, end time.Time) []Order
	SearchShifts(ctx context.Context, locationID string, start, end time.Time) []Shift
	SearchScheduledShifts(ctx context.Context, locationID string, start, end time.Time) []ScheduledShift
	TeamDirectory(ctx context.Context) TeamDirectory
	CategoryMap(ctx context.Context) CategoryMap

	// LocationTimezone returns the location's zone, or the configured default zone
	LocationTimezone(ctx context.Context, locationID string) *time.Location
	// DefaultLocationID is the location used for stores without an override
	DefaultLocationID() string

	CategoryNames(ctx context.Context) []string
	JobTitles(ctx context.Context) []string
}
