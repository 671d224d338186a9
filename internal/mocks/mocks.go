// Package mocks holds testify mocks of the repository, POS gateway and service
// interfaces shared by service and handler tests.
package mocks

import (
	"context"
	"time"

	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/domain/pos"
	"github.com/hospomate/hospomate-backend-go/internal/domain/store"
	"github.com/stretchr/testify/mock"
)

type Gateway struct {
	mock.Mock
}

func (m *Gateway) SearchOrders(ctx context.Context, locationID string, start, end time.Time) []pos.Order {
	args := m.Called(ctx, locationID, start, end)
	orders, _ := args.Get(0).([]pos.Order)
	return orders
}

func (m *Gateway) SearchShifts(ctx context.Context, locationID string, start, end time.Time) []pos.Shift {
	args := m.Called(ctx, locationID, start, end)
	shifts, _ := args.Get(0).([]pos.Shift)
	return shifts
}

func (m *Gateway) SearchScheduledShifts(ctx context.Context, locationID string, start, end time.Time) []pos.ScheduledShift {
	args := m.Called(ctx, locationID, start, end)
	shifts, _ := args.Get(0).([]pos.ScheduledShift)
	return shifts
}

func (m *Gateway) TeamDirectory(ctx context.Context) pos.TeamDirectory {
	args := m.Called(ctx)
	directory, _ := args.Get(0).(pos.TeamDirectory)
	return directory
}

func (m *Gateway) CategoryMap(ctx context.Context) pos.CategoryMap {
	args := m.Called(ctx)
	categories, _ := args.Get(0).(pos.CategoryMap)
	return categories
}

func (m *Gateway) LocationTimezone(ctx context.Context, locationID string) *time.Location {
	args := m.Called(ctx, locationID)
	loc, _ := args.Get(0).(*time.Location)
	return loc
}

func (m *Gateway) DefaultLocationID() string {
	args := m.Called()
	return args.String(0)
}

func (m *Gateway) CategoryNames(ctx context.Context) []string {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names
}

func (m *Gateway) JobTitles(ctx context.Context) []string {
	args := m.Called(ctx)
	titles, _ := args.Get(0).([]string)
	return titles
}

type StoreRepository struct {
	mock.Mock
}

func (m *StoreRepository) GetByID(ctx context.Context, id string) (store.Store, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(store.Store), args.Error(1)
}

type StaffRepository struct {
	mock.Mock
}

func (m *StaffRepository) ListByStoreID(ctx context.Context, storeID string) ([]store.Staff, error) {
	args := m.Called(ctx, storeID)
	staff, _ := args.Get(0).([]store.Staff)
	return staff, args.Error(1)
}

type ContributionRepository struct {
	mock.Mock
}

func (m *ContributionRepository) ListByStoreID(ctx context.Context, storeID string) ([]contribution.JobRoleContribution, error) {
	args := m.Called(ctx, storeID)
	rows, _ := args.Get(0).([]contribution.JobRoleContribution)
	return rows, args.Error(1)
}

func (m *ContributionRepository) Create(ctx context.Context, c contribution.JobRoleContribution) (contribution.JobRoleContribution, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(contribution.JobRoleContribution), args.Error(1)
}

func (m *ContributionRepository) GetByID(ctx context.Context, id string) (contribution.JobRoleContribution, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(contribution.JobRoleContribution), args.Error(1)
}

func (m *ContributionRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// DashboardInvalidator records cache invalidations requested by the config service
type DashboardInvalidator struct {
	mock.Mock
}

func (m *DashboardInvalidator) InvalidateStore(storeID string) {
	m.Called(storeID)
}
