package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/hospomate/hospomate-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type storeRepositoryImpl struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.StoreRepository {
	return &storeRepositoryImpl{db: db}
}

// GetByID implements store.StoreRepository.
func (r *storeRepositoryImpl) GetByID(ctx context.Context, id string) (store.Store, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, owner_id, name, pos_location_id, timezone,
			COALESCE(to_char(opening_time, 'HH24:MI'), ''),
			COALESCE(to_char(closing_time, 'HH24:MI'), ''),
			revenue_per_labour_hour_threshold
		FROM stores
		WHERE id = $1 AND deleted_at IS NULL
	`

	var result store.Store
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.OwnerID,
		&result.Name,
		&result.POSLocationID,
		&result.Timezone,
		&result.OpeningTime,
		&result.ClosingTime,
		&result.RevenuePerLabourHourThreshold,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store: %w", err)
	}

	return result, nil
}
