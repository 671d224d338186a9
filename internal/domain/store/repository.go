package store

import "context"

type StoreRepository interface {
	GetByID(ctx context.Context, id string) (Store, error)
}

type StaffRepository interface {
	// ListByStoreID returns staff ordered by id so name matching is deterministic
	ListByStoreID(ctx context.Context, storeID string) ([]Staff, error)
}
