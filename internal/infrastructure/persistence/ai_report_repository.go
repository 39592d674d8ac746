package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormAIReportRepository implements dataset.AIReportRepository using GORM
type GormAIReportRepository struct {
	db *gorm.DB
}

// NewGormAIReportRepository creates a new GormAIReportRepository
func NewGormAIReportRepository(db *gorm.DB) *GormAIReportRepository {
	return &GormAIReportRepository{db: db}
}

// Save creates or updates an AI report
func (r *GormAIReportRepository) Save(ctx context.Context, report *dataset.AIReport) error {
	return r.db.WithContext(ctx).Save(report).Error
}

// FindByID finds an AI report by ID within the user's reports
func (r *GormAIReportRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*dataset.AIReport, error) {
	var report dataset.AIReport
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// FindAllForUser returns all AI reports owned by the user, newest first
func (r *GormAIReportRepository) FindAllForUser(ctx context.Context, userID string) ([]dataset.AIReport, error) {
	var reports []dataset.AIReport
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// Delete removes an AI report owned by the user
func (r *GormAIReportRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&dataset.AIReport{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
