package postgresql

import (
	"context"
	"fmt"

	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) store.StaffRepository {
	return &staffRepositoryImpl{db: db}
}

// ListByStoreID implements store.StaffRepository.
func (r *staffRepositoryImpl) ListByStoreID(ctx context.Context, storeID string) ([]store.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, store_id, name, job_title, hourly_rate, job_area
		FROM staff
		WHERE store_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`

	rows, err := q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var staff []store.Staff
	for rows.Next() {
		var s store.Staff
		if err := rows.Scan(
			&s.ID,
			&s.StoreID,
			&s.Name,
			&s.JobTitle,
			&s.HourlyRate,
			&s.JobArea,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate staff: %w", err)
	}

	return staff, nil
}
