package share

import (
	"time"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/dataset"
)

// CreateShareLinkRequest creates a public link to a dataset's dashboard.
type CreateShareLinkRequest struct {
	DatasetName string     `json:"dataset_name" binding:"required,min=1,max=100"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// ShareLinkResponse represents a share link in API responses.
type ShareLinkResponse struct {
	ID          string     `json:"id"`
	DatasetName string     `json:"dataset_name"`
	Token       string     `json:"token"`
	Active      bool       `json:"active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// SharedViewResponse is the read-only dashboard served to link holders.
type SharedViewResponse struct {
	DatasetName string                          `json:"dataset_name"`
	RecordCount int                             `json:"record_count"`
	Stats       analytics.DashboardStats        `json:"stats"`
	Products    []analytics.ProductSummary      `json:"products"`
	TimeSeries  []analytics.TimeSeriesPoint     `json:"time_series"`
	Categories  []analytics.CategoryPerformance `json:"categories"`
	Alerts      []string                        `json:"alerts"`
	GeneratedAt time.Time                       `json:"generated_at"`
}

func toShareLinkResponse(l *dataset.ShareLink) *ShareLinkResponse {
	return &ShareLinkResponse{
		ID:          l.ID.String(),
		DatasetName: l.DatasetName,
		Token:       l.Token,
		Active:      l.Active,
		ExpiresAt:   l.ExpiresAt,
		CreatedAt:   l.CreatedAt,
	}
}
