package report

import (
	"time"

	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/insight"
)

// GenerateReportRequest asks for a report over a filtered dataset view.
type GenerateReportRequest struct {
	DateFrom string `json:"date_from" binding:"omitempty,isodate"`
	DateTo   string `json:"date_to" binding:"omitempty,isodate"`
	Category string `json:"category" binding:"max=100"`
	Product  string `json:"product" binding:"max=200"`
}

// ReportResponse represents a stored AI report in API responses.
type ReportResponse struct {
	ID          string           `json:"id"`
	DatasetName string           `json:"dataset_name"`
	RecordCount int              `json:"record_count"`
	Analysis    insight.Analysis `json:"analysis"`
	CreatedAt   time.Time        `json:"created_at"`
}

func toReportResponse(r *dataset.AIReport, analysis insight.Analysis) *ReportResponse {
	return &ReportResponse{
		ID:          r.ID.String(),
		DatasetName: r.DatasetName,
		RecordCount: r.RecordCount,
		Analysis:    analysis,
		CreatedAt:   r.CreatedAt,
	}
}
