package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/salespulse/backend/internal/domain/dataset"
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
