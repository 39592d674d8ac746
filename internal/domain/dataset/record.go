// Package dataset models the persistent sales data a user has uploaded,
// grouped into named datasets, together with the share links, goals and
// AI reports attached to them.
package dataset

import (
	"strings"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/shared"
)

const (
	// DefaultName is the dataset records land in when an upload does not
	// name one.
	DefaultName = "default"

	maxDatasetNameLength = 100
)

// Record is a stored sales record row. It is the persisted counterpart
// of analytics.SalesRecord, scoped to the owning user and dataset.
type Record struct {
	shared.BaseEntity
	UserID       string  `gorm:"type:varchar(128);not null;index:idx_records_user_dataset,priority:1"`
	DatasetName  string  `gorm:"type:varchar(100);not null;index:idx_records_user_dataset,priority:2"`
	ProductName  string  `gorm:"type:varchar(200);not null"`
	Category     string  `gorm:"type:varchar(100);not null"`
	DateOfSale   string  `gorm:"type:varchar(32);not null;index"`
	QuantitySold int     `gorm:"not null"`
	Revenue      float64 `gorm:"type:double precision;not null"`
}

// TableName returns the table name for GORM
func (Record) TableName() string {
	return "sales_records"
}

// NewRecord creates a stored record from an analytics record. A missing
// product name is the only rejection; dates pass through as given, so
// rows with a blank date are still stored.
func NewRecord(userID, datasetName string, r analytics.SalesRecord) (*Record, error) {
	if err := ValidateName(datasetName); err != nil {
		return nil, err
	}
	if strings.TrimSpace(r.ProductName) == "" {
		return nil, shared.NewDomainError("INVALID_RECORD", "Product name is required")
	}
	category := r.Category
	if strings.TrimSpace(category) == "" {
		category = analytics.DefaultCategory
	}
	return &Record{
		BaseEntity:   shared.NewBaseEntity(),
		UserID:       userID,
		DatasetName:  datasetName,
		ProductName:  r.ProductName,
		Category:     category,
		DateOfSale:   r.DateOfSale,
		QuantitySold: r.QuantitySold,
		Revenue:      r.Revenue,
	}, nil
}

// ToAnalytics converts the stored row back into the in-memory record the
// aggregation functions operate on.
func (r *Record) ToAnalytics() analytics.SalesRecord {
	return analytics.SalesRecord{
		ID:           r.ID.String(),
		ProductName:  r.ProductName,
		Category:     r.Category,
		DateOfSale:   r.DateOfSale,
		QuantitySold: r.QuantitySold,
		Revenue:      r.Revenue,
	}
}

// ToAnalyticsRecords converts a stored slice in one pass.
func ToAnalyticsRecords(rows []Record) []analytics.SalesRecord {
	out := make([]analytics.SalesRecord, len(rows))
	for i := range rows {
		out[i] = rows[i].ToAnalytics()
	}
	return out
}

// ValidateName checks a dataset name for storage.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_DATASET_NAME", "Dataset name cannot be empty")
	}
	if len(name) > maxDatasetNameLength {
		return shared.NewDomainError("INVALID_DATASET_NAME", "Dataset name cannot exceed 100 characters")
	}
	return nil
}

// Summary is a per-dataset rollup used for the history listing.
type Summary struct {
	Name        string `json:"name"`
	RecordCount int64  `json:"record_count"`
	FirstDate   string `json:"first_date"`
	LastDate    string `json:"last_date"`
}
