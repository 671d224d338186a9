package shiftreport

import "context"

type ShiftReportService interface {
	// GetShiftReport reconciles scheduled and actual shifts between start and end.
	// Datetimes without an offset are read in the store's timezone.
	GetShiftReport(ctx context.Context, storeID string, start, end string) (*Report, error)
}
