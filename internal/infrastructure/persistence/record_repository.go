package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// DefaultInsertChunkSize bounds the number of rows per INSERT statement.
const DefaultInsertChunkSize = 500

// GormRecordRepository implements dataset.RecordRepository using GORM
type GormRecordRepository struct {
	db        *gorm.DB
	chunkSize int
}

// NewGormRecordRepository creates a new GormRecordRepository
func NewGormRecordRepository(db *gorm.DB, chunkSize int) *GormRecordRepository {
	if chunkSize <= 0 {
		chunkSize = DefaultInsertChunkSize
	}
	return &GormRecordRepository{db: db, chunkSize: chunkSize}
}

// SaveBatch inserts all records in a single transaction, chunked to keep
// statement sizes bounded. A failure rolls back the whole batch.
func (r *GormRecordRepository) SaveBatch(ctx context.Context, records []*dataset.Record) error {
	if len(records) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(records, r.chunkSize).Error
	})
}

// ReplaceDataset deletes the dataset's current rows and inserts the new
// ones inside a single transaction, so a failed insert rolls the delete
// back too.
func (r *GormRecordRepository) ReplaceDataset(ctx context.Context, userID, datasetName string, records []*dataset.Record) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ? AND dataset_name = ?", userID, datasetName).
			Delete(&dataset.Record{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.CreateInBatches(records, r.chunkSize).Error
	})
}

// FindByDataset returns all records of one dataset owned by the user,
// ordered by sale date
func (r *GormRecordRepository) FindByDataset(ctx context.Context, userID, datasetName string) ([]dataset.Record, error) {
	var rows []dataset.Record
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND dataset_name = ?", userID, datasetName).
		Order("date_of_sale ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ListSummaries returns per-dataset rollups for the user's datasets
func (r *GormRecordRepository) ListSummaries(ctx context.Context, userID string) ([]dataset.Summary, error) {
	var summaries []dataset.Summary
	err := r.db.WithContext(ctx).
		Model(&dataset.Record{}).
		Select("dataset_name AS name, COUNT(*) AS record_count, MIN(date_of_sale) AS first_date, MAX(date_of_sale) AS last_date").
		Where("user_id = ?", userID).
		Group("dataset_name").
		Order("name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// DeleteDataset removes a dataset and all its records
func (r *GormRecordRepository) DeleteDataset(ctx context.Context, userID, datasetName string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND dataset_name = ?", userID, datasetName).
		Delete(&dataset.Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteRecord removes a single record owned by the user
func (r *GormRecordRepository) DeleteRecord(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&dataset.Record{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
