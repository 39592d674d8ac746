package ingest

import (
	"context"

	"github.com/google/uuid"

	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
)

// DatasetService handles dataset listing and removal
type DatasetService struct {
	recordRepo dataset.RecordRepository
}

// NewDatasetService creates a new DatasetService
func NewDatasetService(recordRepo dataset.RecordRepository) *DatasetService {
	return &DatasetService{recordRepo: recordRepo}
}

// List returns per-dataset rollups for the user.
func (s *DatasetService) List(ctx context.Context, userID string) ([]DatasetSummaryResponse, error) {
	summaries, err := s.recordRepo.ListSummaries(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toSummaryResponses(summaries), nil
}

// Records returns all records of one dataset in sale-date order.
func (s *DatasetService) Records(ctx context.Context, userID, datasetName string) ([]RecordResponse, error) {
	if err := dataset.ValidateName(datasetName); err != nil {
		return nil, err
	}
	rows, err := s.recordRepo.FindByDataset(ctx, userID, datasetName)
	if err != nil {
		return nil, err
	}
	out := make([]RecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, *toRecordResponse(&rows[i]))
	}
	return out, nil
}

// DeleteDataset removes a dataset and all its records.
func (s *DatasetService) DeleteDataset(ctx context.Context, userID, datasetName string) error {
	if err := dataset.ValidateName(datasetName); err != nil {
		return err
	}
	return s.recordRepo.DeleteDataset(ctx, userID, datasetName)
}

// DeleteRecord removes a single record by ID.
func (s *DatasetService) DeleteRecord(ctx context.Context, userID, recordID string) error {
	id, err := uuid.Parse(recordID)
	if err != nil {
		return shared.NewDomainError("INVALID_ID", "Invalid record ID")
	}
	return s.recordRepo.DeleteRecord(ctx, userID, id)
}
