package dataset

import (
	"encoding/json"

	"github.com/salespulse/backend/internal/domain/insight"
	"github.com/salespulse/backend/internal/domain/shared"
)

// AIReport is a stored AI analysis of a dataset at a point in time. The
// analysis body is kept as JSON so the report survives schema drift in
// the model output.
type AIReport struct {
	shared.BaseEntity
	UserID      string `gorm:"type:varchar(128);not null;index"`
	DatasetName string `gorm:"type:varchar(100);not null"`
	RecordCount int    `gorm:"not null"`
	Digest      string `gorm:"type:text;not null"`
	Content     string `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for GORM
func (AIReport) TableName() string {
	return "ai_reports"
}

// NewAIReport creates a report from a validated analysis.
func NewAIReport(userID, datasetName string, recordCount int, digest string, analysis insight.Analysis) (*AIReport, error) {
	if err := analysis.Validate(); err != nil {
		return nil, err
	}
	content, err := json.Marshal(analysis)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_REPORT", "Analysis could not be serialized")
	}
	return &AIReport{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		DatasetName: datasetName,
		RecordCount: recordCount,
		Digest:      digest,
		Content:     string(content),
	}, nil
}

// Analysis decodes the stored analysis body.
func (r *AIReport) Analysis() (insight.Analysis, error) {
	var a insight.Analysis
	if err := json.Unmarshal([]byte(r.Content), &a); err != nil {
		return insight.Analysis{}, insight.ErrMalformedAnalysis
	}
	return a, nil
}
