package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type contributionRepositoryImpl struct {
	db *database.DB
}

func NewContributionRepository(db *database.DB) contribution.ContributionRepository {
	return &contributionRepositoryImpl{db: db}
}

// ListByStoreID implements contribution.ContributionRepository.
func (r *contributionRepositoryImpl) ListByStoreID(ctx context.Context, storeID string) ([]contribution.JobRoleContribution, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, job_title, category_name, contribution_percentage, created_at
		FROM job_role_contributions
		WHERE store_id = $1
		ORDER BY created_at, id
	`

	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var result []contribution.JobRoleContribution
	for rows.Next() {
		var c contribution.JobRoleContribution
		if err := rows.Scan(
			&c.ID,
			&c.StoreID,
			&c.JobTitle,
			&c.CategoryName,
			&c.ContributionPercentage,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contributions: %w", err)
	}

	return result, nil
}

// Create implements contribution.ContributionRepository. The store row is locked for
// the insert so a contribution is never written for a store being deleted.
func (r *contributionRepositoryImpl) Create(ctx context.Context, c contribution.JobRoleContribution) (contribution.JobRoleContribution, error) {
	var result contribution.JobRoleContribution

	err := WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		var storeID string
		err := q.QueryRow(ctx, `SELECT id FROM stores WHERE id = $1 AND deleted_at IS NULL FOR SHARE`, c.StoreID).Scan(&storeID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return store.ErrStoreNotFound
			}
			return fmt.Errorf("failed to lock store: %w", err)
		}

		query := `
			INSERT INTO job_role_contributions (id, store_id, job_title, category_name, contribution_percentage, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
			RETURNING id, store_id, job_title, category_name, contribution_percentage, created_at
		`
		err = q.QueryRow(ctx, query, c.ID, storeID, c.JobTitle, c.CategoryName, c.ContributionPercentage).Scan(
			&result.ID,
			&result.StoreID,
			&result.JobTitle,
			&result.CategoryName,
			&result.ContributionPercentage,
			&result.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return contribution.ErrContributionExists
			}
			return fmt.Errorf("failed to create contribution: %w", err)
		}
		return nil
	})
	if err != nil {
		return contribution.JobRoleContribution{}, err
	}

	return result, nil
}

// GetByID implements contribution.ContributionRepository.
func (r *contributionRepositoryImpl) GetByID(ctx context.Context, id string) (contribution.JobRoleContribution, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, job_title, category_name, contribution_percentage, created_at
		FROM job_role_contributions
		WHERE id = $1
	`

	var result contribution.JobRoleContribution
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.StoreID,
		&result.JobTitle,
		&result.CategoryName,
		&result.ContributionPercentage,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contribution.JobRoleContribution{}, contribution.ErrContributionNotFound
		}
		return contribution.JobRoleContribution{}, fmt.Errorf("failed to get contribution: %w", err)
	}

	return result, nil
}

// Delete implements contribution.ContributionRepository.
func (r *contributionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM job_role_contributions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contribution: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return contribution.ErrContributionNotFound
	}

	return nil
}
