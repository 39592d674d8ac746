// Package analytics assembles dashboard views, filter options, and
// comparisons from a user's stored sales records.
package analytics

import (
	"context"
	"sort"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/infrastructure/config"
)

// DashboardService computes analytics over stored datasets
type DashboardService struct {
	recordRepo dataset.RecordRepository
	detector   *analytics.AnomalyDetector
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(recordRepo dataset.RecordRepository, cfg config.AnomalyConfig) *DashboardService {
	detector := analytics.NewAnomalyDetector()
	if cfg.Threshold > 0 {
		detector.Threshold = cfg.Threshold
	}
	if cfg.MinSamples > 0 {
		detector.MinSamples = cfg.MinSamples
	}
	return &DashboardService{recordRepo: recordRepo, detector: detector}
}

// Dashboard builds the full dashboard view of one dataset. The filter
// narrows every panel, including anomaly alerts.
func (s *DashboardService) Dashboard(ctx context.Context, userID, datasetName string, filter analytics.FilterState) (*DashboardResponse, error) {
	all, err := s.loadRecords(ctx, userID, datasetName)
	if err != nil {
		return nil, err
	}
	filtered := analytics.ApplyFilters(all, filter)

	return &DashboardResponse{
		Stats:           analytics.ComputeDashboardStats(filtered),
		Products:        analytics.ComputeProductSummaries(filtered),
		TimeSeries:      analytics.ComputeTimeSeries(filtered),
		Categories:      analytics.ComputeCategoryPerformance(filtered),
		Alerts:          s.detector.Detect(filtered),
		TotalRecords:    len(all),
		FilteredRecords: len(filtered),
		Filter:          filter,
	}, nil
}

// FilterOptions returns the distinct categories, products, and date
// range of a dataset.
func (s *DashboardService) FilterOptions(ctx context.Context, userID, datasetName string) (*FilterOptionsResponse, error) {
	records, err := s.loadRecords(ctx, userID, datasetName)
	if err != nil {
		return nil, err
	}

	from, to := analytics.DateRange(records)
	return &FilterOptionsResponse{
		Categories: distinctSorted(records, func(r analytics.SalesRecord) string { return r.Category }),
		Products:   distinctSorted(records, func(r analytics.SalesRecord) string { return r.ProductName }),
		DateFrom:   from,
		DateTo:     to,
	}, nil
}

// Compare builds a side-by-side comparison of two record sets: two
// filtered windows of the route dataset, or two datasets when a side
// names its own. Both sides must match at least one record.
func (s *DashboardService) Compare(ctx context.Context, userID, datasetName string, req CompareRequest) (*analytics.Comparison, error) {
	recordsA, err := s.loadSide(ctx, userID, datasetName, req.SideA)
	if err != nil {
		return nil, err
	}
	recordsB, err := s.loadSide(ctx, userID, datasetName, req.SideB)
	if err != nil {
		return nil, err
	}

	labelA := req.SideA.Label
	if labelA == "" {
		labelA = "A"
	}
	labelB := req.SideB.Label
	if labelB == "" {
		labelB = "B"
	}

	return analytics.Compare(labelA, recordsA, labelB, recordsB)
}

func (s *DashboardService) loadSide(ctx context.Context, userID, defaultDataset string, side CompareSideRequest) ([]analytics.SalesRecord, error) {
	name := side.Dataset
	if name == "" {
		name = defaultDataset
	}
	records, err := s.loadRecords(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	return analytics.ApplyFilters(records, side.Filter), nil
}

func (s *DashboardService) loadRecords(ctx context.Context, userID, datasetName string) ([]analytics.SalesRecord, error) {
	if err := dataset.ValidateName(datasetName); err != nil {
		return nil, err
	}
	rows, err := s.recordRepo.FindByDataset(ctx, userID, datasetName)
	if err != nil {
		return nil, err
	}
	return dataset.ToAnalyticsRecords(rows), nil
}

func distinctSorted(records []analytics.SalesRecord, key func(analytics.SalesRecord) string) []string {
	seen := make(map[string]struct{}, len(records))
	out := make([]string, 0, len(records))
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
