package store

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultRevenueThreshold is the revenue per active staff member per hour below which a
// bucket counts as underutilised when the store has no threshold configured.
var DefaultRevenueThreshold = decimal.RequireFromString("50.00")

const (
	DefaultOpeningTime = "09:00"
	DefaultClosingTime = "22:00"
)

type Store struct {
	ID                            string
	OwnerID                       string
	Name                          string
	POSLocationID                 *string // overrides the configured Square location
	Timezone                      *string // IANA zone, overrides the location timezone
	OpeningTime                   string  // HH:MM
	ClosingTime                   string  // HH:MM
	RevenuePerLabourHourThreshold decimal.NullDecimal
}

// Threshold returns the configured utilisation threshold or the 50.00 default.
func (s Store) Threshold() decimal.Decimal {
	if s.RevenuePerLabourHourThreshold.Valid {
		return s.RevenuePerLabourHourThreshold.Decimal
	}
	return DefaultRevenueThreshold
}

// TradingHours returns opening and closing times with defaults applied.
func (s Store) TradingHours() (string, string) {
	opening, closing := s.OpeningTime, s.ClosingTime
	if strings.TrimSpace(opening) == "" {
		opening = DefaultOpeningTime
	}
	if strings.TrimSpace(closing) == "" {
		closing = DefaultClosingTime
	}
	return opening, closing
}

// LocationID returns the store's POS location override or fallback
func (s Store) LocationID(fallback string) string {
	if s.POSLocationID != nil && strings.TrimSpace(*s.POSLocationID) != "" {
		return *s.POSLocationID
	}
	return fallback
}

// TimezoneOverride returns the store's own zone. It returns nil without an error
// when the store has none.
func (s Store) TimezoneOverride() (*time.Location, error) {
	if s.Timezone == nil || strings.TrimSpace(*s.Timezone) == "" {
		return nil, nil
	}
	return time.LoadLocation(*s.Timezone)
}

// Staff is a local staff record. It is only used to match POS team members by name.
type Staff struct {
	ID         string
	StoreID    string
	Name       string
	JobTitle   *string
	HourlyRate decimal.NullDecimal
	JobArea    *string
}
