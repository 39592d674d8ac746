package dataset

import (
	"time"

	"github.com/google/uuid"
	"github.com/salespulse/backend/internal/domain/shared"
)

// ShareLink grants read-only dashboard access to a dataset through an
// unguessable token. A link can be toggled off without deleting it, and
// may carry an expiry.
type ShareLink struct {
	shared.BaseEntity
	UserID      string     `gorm:"type:varchar(128);not null;index"`
	DatasetName string     `gorm:"type:varchar(100);not null"`
	Token       string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	Active      bool       `gorm:"not null;default:true"`
	ExpiresAt   *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM
func (ShareLink) TableName() string {
	return "share_links"
}

// NewShareLink creates an active share link with a fresh token.
func NewShareLink(userID, datasetName string, expiresAt *time.Time) (*ShareLink, error) {
	if err := ValidateName(datasetName); err != nil {
		return nil, err
	}
	return &ShareLink{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		DatasetName: datasetName,
		Token:       uuid.NewString(),
		Active:      true,
		ExpiresAt:   expiresAt,
	}, nil
}

// CheckAccess reports whether the link currently grants access.
// An inactive link and an expired link fail with distinct errors so the
// viewer surface can tell them apart.
func (l *ShareLink) CheckAccess(now time.Time) error {
	if !l.Active {
		return shared.ErrShareInactive
	}
	if l.ExpiresAt != nil && now.After(*l.ExpiresAt) {
		return shared.ErrShareExpired
	}
	return nil
}

// Toggle flips the active flag.
func (l *ShareLink) Toggle() {
	l.Active = !l.Active
	l.UpdatedAt = time.Now()
}
