package mocks

import (
	"context"

	"github.com/hospomate/hospomate-backend-go/internal/domain/contribution"
	"github.com/hospomate/hospomate-backend-go/internal/domain/insight"
	"github.com/hospomate/hospomate-backend-go/internal/domain/shiftreport"
	"github.com/stretchr/testify/mock"
)

type InsightService struct {
	mock.Mock
}

func (m *InsightService) GetWeeklyDashboard(ctx context.Context, storeID string, weekStart string) (*insight.WeeklyDashboard, error) {
	args := m.Called(ctx, storeID, weekStart)
	dashboard, _ := args.Get(0).(*insight.WeeklyDashboard)
	return dashboard, args.Error(1)
}

func (m *InsightService) InvalidateStore(storeID string) {
	m.Called(storeID)
}

type ShiftReportService struct {
	mock.Mock
}

func (m *ShiftReportService) GetShiftReport(ctx context.Context, storeID string, start, end string) (*shiftreport.Report, error) {
	args := m.Called(ctx, storeID, start, end)
	report, _ := args.Get(0).(*shiftreport.Report)
	return report, args.Error(1)
}

type ConfigService struct {
	mock.Mock
}

func (m *ConfigService) ListContributions(ctx context.Context, storeID string) ([]contribution.ContributionResponse, error) {
	args := m.Called(ctx, storeID)
	rows, _ := args.Get(0).([]contribution.ContributionResponse)
	return rows, args.Error(1)
}

func (m *ConfigService) CreateContribution(ctx context.Context, req contribution.CreateContributionRequest) (contribution.ContributionResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(contribution.ContributionResponse)
	return resp, args.Error(1)
}

func (m *ConfigService) DeleteContribution(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ConfigService) ListCategoryNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *ConfigService) ListJobTitles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	titles, _ := args.Get(0).([]string)
	return titles, args.Error(1)
}
