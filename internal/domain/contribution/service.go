package contribution

import "context"

// ConfigService manages attribution configuration for a store
type ConfigService interface {
	ListContributions(ctx context.Context, storeID string) ([]ContributionResponse, error)
	CreateContribution(ctx context.Context, req CreateContributionRequest) (ContributionResponse, error)
	DeleteContribution(ctx context.Context, id string) error

	// ListCategoryNames returns the POS catalog category names, sorted
	ListCategoryNames(ctx context.Context) ([]string, error)
	// ListJobTitles returns the distinct job titles known to the POS, sorted
	ListJobTitles(ctx context.Context) ([]string, error)
}
