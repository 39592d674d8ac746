package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormShareLinkRepository implements dataset.ShareLinkRepository using GORM
type GormShareLinkRepository struct {
	db *gorm.DB
}

// NewGormShareLinkRepository creates a new GormShareLinkRepository
func NewGormShareLinkRepository(db *gorm.DB) *GormShareLinkRepository {
	return &GormShareLinkRepository{db: db}
}

// Save creates or updates a share link
func (r *GormShareLinkRepository) Save(ctx context.Context, link *dataset.ShareLink) error {
	return r.db.WithContext(ctx).Save(link).Error
}

// FindByID finds a share link by ID within the owner's links
func (r *GormShareLinkRepository) FindByID(ctx context.Context, userID string, id uuid.UUID) (*dataset.ShareLink, error) {
	var link dataset.ShareLink
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindByToken finds a share link by its token, regardless of owner
func (r *GormShareLinkRepository) FindByToken(ctx context.Context, token string) (*dataset.ShareLink, error) {
	var link dataset.ShareLink
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&link).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &link, nil
}

// FindAllForUser returns all share links owned by the user
func (r *GormShareLinkRepository) FindAllForUser(ctx context.Context, userID string) ([]dataset.ShareLink, error) {
	var links []dataset.ShareLink
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	return links, nil
}

// Delete removes a share link owned by the user
func (r *GormShareLinkRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id = ?", userID, id).
		Delete(&dataset.ShareLink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}
