package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/insight"
)

// MockRecordRepository is a mock implementation of dataset.RecordRepository
type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) SaveBatch(ctx context.Context, records []*dataset.Record) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockRecordRepository) ReplaceDataset(ctx context.Context, userID, datasetName string, records []*dataset.Record) error {
	args := m.Called(ctx, userID, datasetName, records)
	return args.Error(0)
}

func (m *MockRecordRepository) FindByDataset(ctx context.Context, userID, datasetName string) ([]dataset.Record, error) {
	args := m.Called(ctx, userID, datasetName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dataset.Record), args.Error(1)
}

func (m *MockRecordRepository) ListSummaries(ctx context.Context, userID string) ([]dataset.Summary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dataset.Summary), args.Error(1)
}

func (m *MockRecordRepository) DeleteDataset(ctx context.Context, userID, datasetName string) error {
	args := m.Called(ctx, userID, datasetName)
	return args.Error(0)
}

func (m *MockRecordRepository) DeleteRecord(ctx context.Context, userID string, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockAIReportRepository is a mock implementation of dataset.AIReportRepository
type MockAIReportRepository struct {
	mock.Mock
}

func (m *MockAIReportRepository) Save(ctx context.Context, report *dataset.AIReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockAIReportRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*dataset.AIReport, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dataset.AIReport), args.Error(1)
}

func (m *MockAIReportRepository) FindAllForUser(ctx context.Context, userID string) ([]dataset.AIReport, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dataset.AIReport), args.Error(1)
}

func (m *MockAIReportRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockAnalyzer is a mock implementation of Analyzer
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, digest string) (insight.Analysis, error) {
	args := m.Called(ctx, digest)
	return args.Get(0).(insight.Analysis), args.Error(1)
}
