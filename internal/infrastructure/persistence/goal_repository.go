package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormGoalRepository implements dataset.GoalRepository using GORM
type GormGoalRepository struct {
	db *gorm.DB
}

// NewGormGoalRepository creates a new GormGoalRepository
func NewGormGoalRepository(db *gorm.DB) *GormGoalRepository {
	return &GormGoalRepository{db: db}
}

// Save creates or updates a goal
func (r *GormGoalRepository) Save(ctx context.Context, goal *dataset.Goal) error {
	return r.db.WithContext(ctx).Save(goal).Error
}

// FindByID finds a goal by ID within the user's goals
func (r *GormGoalRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*dataset.Goal, error) {
	var goal dataset.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&goal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &goal, nil
}

// FindAllForUser returns all goals owned by the user
func (r *GormGoalRepository) FindAllForUser(ctx context.Context, userID string) ([]dataset.Goal, error) {
	var goals []dataset.Goal
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	if err != nil {
		return nil, err
	}
	return goals, nil
}

// Delete removes a goal owned by the user
func (r *GormGoalRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&dataset.Goal{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
