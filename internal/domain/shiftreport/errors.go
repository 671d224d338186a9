package shiftreport

import "errors"

var (
	ErrInvalidDateTime  = errors.New("invalid datetime, use ISO8601 e.g. 2024-06-03T09:00:00")
	ErrInvalidDateRange = errors.New("end must be after start")
)
