package insight

import "errors"

var (
	ErrInvalidWeekStart = errors.New("invalid week start, use YYYY-MM-DD")
)
