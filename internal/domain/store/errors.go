package store

import "errors"

var (
	ErrStoreNotFound = errors.New("store not found")
	ErrInvalidID     = errors.New("invalid store id")
)
