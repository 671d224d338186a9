package contribution

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/domain/pos"
	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/validator"
)

// DashboardInvalidator drops cached dashboards after the attribution rules change
type DashboardInvalidator interface {
	InvalidateStore(storeID string)
}

type ConfigServiceImpl struct {
	contributionRepo contribution.ContributionRepository
	storeRepo        store.StoreRepository
	gateway          pos.Gateway
	dashboards       DashboardInvalidator
}

func NewConfigService(
	contributionRepo contribution.ContributionRepository,
	storeRepo store.StoreRepository,
	gateway pos.Gateway,
	dashboards DashboardInvalidator,
) *ConfigServiceImpl {
	return &ConfigServiceImpl{
		contributionRepo: contributionRepo,
		storeRepo:        storeRepo,
		gateway:          gateway,
		dashboards:       dashboards,
	}
}

func (s *ConfigServiceImpl) ListContributions(ctx context.Context, storeID string) ([]contribution.ContributionResponse, error) {
	if !validator.IsValidUUID(storeID) {
		return nil, store.ErrInvalidID
	}
	if _, err := s.storeRepo.GetByID(ctx, storeID); err != nil {
		return nil, err
	}

	rows, err := s.contributionRepo.ListByStoreID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}

	responses := make([]contribution.ContributionResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, contribution.ToResponse(row))
	}
	return responses, nil
}

func (s *ConfigServiceImpl) CreateContribution(ctx context.Context, req contribution.CreateContributionRequest) (contribution.ContributionResponse, error) {
	if err := req.Validate(); err != nil {
		return contribution.ContributionResponse{}, err
	}
	if _, err := s.storeRepo.GetByID(ctx, req.StoreID); err != nil {
		return contribution.ContributionResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return contribution.ContributionResponse{}, fmt.Errorf("failed to generate contribution id: %w", err)
	}

	created, err := s.contributionRepo.Create(ctx, contribution.JobRoleContribution{
		ID:                     id.String(),
		StoreID:                req.StoreID,
		JobTitle:               req.JobTitle,
		CategoryName:           req.CategoryName,
		ContributionPercentage: req.ContributionPercentage,
	})
	if err != nil {
		return contribution.ContributionResponse{}, err
	}

	s.dashboards.InvalidateStore(created.StoreID)
	slog.Info("Job role contribution created",
		"store_id", created.StoreID,
		"job_title", created.JobTitle,
		"category", created.CategoryName,
		"percentage", created.ContributionPercentage.String(),
	)
	return contribution.ToResponse(created), nil
}

func (s *ConfigServiceImpl) DeleteContribution(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return contribution.ErrContributionNotFound
	}

	existing, err := s.contributionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.contributionRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.dashboards.InvalidateStore(existing.StoreID)
	slog.Info("Job role contribution deleted", "id", id, "store_id", existing.StoreID)
	return nil
}

func (s *ConfigServiceImpl) ListCategoryNames(ctx context.Context) ([]string, error) {
	return s.gateway.CategoryNames(ctx), nil
}

func (s *ConfigServiceImpl) ListJobTitles(ctx context.Context) ([]string, error) {
	return s.gateway.JobTitles(ctx), nil
}
