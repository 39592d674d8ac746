package analytics

import (
	"github.com/salespulse/backend/internal/domain/analytics"
)

// DashboardResponse is the full dashboard view of one dataset under an
// optional filter.
type DashboardResponse struct {
	Stats           analytics.DashboardStats         `json:"stats"`
	Products        []analytics.ProductSummary       `json:"products"`
	TimeSeries      []analytics.TimeSeriesPoint      `json:"time_series"`
	Categories      []analytics.CategoryPerformance  `json:"categories"`
	Alerts          []string                         `json:"alerts"`
	TotalRecords    int                              `json:"total_records"`
	FilteredRecords int                              `json:"filtered_records"`
	Filter          analytics.FilterState            `json:"filter"`
}

// FilterOptionsResponse lists the values a filter can take for a dataset.
type FilterOptionsResponse struct {
	Categories []string `json:"categories"`
	Products   []string `json:"products"`
	DateFrom   string   `json:"date_from"`
	DateTo     string   `json:"date_to"`
}

// CompareSideRequest selects one side of a comparison. Dataset names a
// different dataset of the same user; empty falls back to the dataset
// the request was made against.
type CompareSideRequest struct {
	Label   string                `json:"label" binding:"max=100"`
	Dataset string                `json:"dataset" binding:"max=100"`
	Filter  analytics.FilterState `json:"filter"`
}

// CompareRequest asks for a side-by-side comparison of two record sets:
// either two filtered windows of one dataset, or two datasets.
type CompareRequest struct {
	SideA CompareSideRequest `json:"side_a"`
	SideB CompareSideRequest `json:"side_b"`
}
