package contribution

import "context"

type ContributionRepository interface {
	ListByStoreID(ctx context.Context, storeID string) ([]JobRoleContribution, error)
	Create(ctx context.Context, c JobRoleContribution) (JobRoleContribution, error)
	GetByID(ctx context.Context, id string) (JobRoleContribution, error)
	Delete(ctx context.Context, id string) error
}
