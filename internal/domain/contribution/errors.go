package contribution

import "errors"

var (
	ErrContributionNotFound = errors.New("job role contribution not found")
	ErrContributionExists   = errors.New("contribution for this job title and category already exists")
)
