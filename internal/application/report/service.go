// Package report turns a dataset into an AI-written analysis and
// manages the stored results.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/insight"
	"github.com/salespulse/backend/internal/domain/shared"
)

// Analyzer produces a structured analysis from a plain-text sales
// digest. It decouples ReportService from the concrete AI client.
type Analyzer interface {
	Analyze(ctx context.Context, digest string) (insight.Analysis, error)
}

// ErrNoRecords is returned when a report is requested for an empty view.
var ErrNoRecords = shared.NewDomainError("NO_RECORDS", "No records to analyze")

// ReportService generates and manages AI reports
type ReportService struct {
	recordRepo dataset.RecordRepository
	reportRepo dataset.AIReportRepository
	analyzer   Analyzer
}

// NewReportService creates a new ReportService
func NewReportService(recordRepo dataset.RecordRepository, reportRepo dataset.AIReportRepository, analyzer Analyzer) *ReportService {
	return &ReportService{
		recordRepo: recordRepo,
		reportRepo: reportRepo,
		analyzer:   analyzer,
	}
}

// Generate digests the filtered dataset, asks the analyzer for an
// analysis, and stores the result.
func (s *ReportService) Generate(ctx context.Context, userID, datasetName string, filter analytics.FilterState) (*ReportResponse, error) {
	if err := dataset.ValidateName(datasetName); err != nil {
		return nil, err
	}

	rows, err := s.recordRepo.FindByDataset(ctx, userID, datasetName)
	if err != nil {
		return nil, err
	}
	records := analytics.ApplyFilters(dataset.ToAnalyticsRecords(rows), filter)
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	digest := analytics.BuildDigest(records)
	analysis, err := s.analyzer.Analyze(ctx, digest)
	if err != nil {
		return nil, err
	}

	stored, err := dataset.NewAIReport(userID, datasetName, len(records), digest, analysis)
	if err != nil {
		return nil, err
	}
	if err := s.reportRepo.Save(ctx, stored); err != nil {
		return nil, err
	}

	return toReportResponse(stored, analysis), nil
}

// List returns the user's stored reports, newest first.
func (s *ReportService) List(ctx context.Context, userID string) ([]ReportResponse, error) {
	reports, err := s.reportRepo.FindAllForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		analysis, err := reports[i].Analysis()
		if err != nil {
			return nil, err
		}
		out = append(out, *toReportResponse(&reports[i], analysis))
	}
	return out, nil
}

// Get returns one stored report.
func (s *ReportService) Get(ctx context.Context, userID, reportID string) (*ReportResponse, error) {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ID", "Invalid report ID")
	}

	stored, err := s.reportRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	analysis, err := stored.Analysis()
	if err != nil {
		return nil, err
	}
	return toReportResponse(stored, analysis), nil
}

// Delete removes a stored report.
func (s *ReportService) Delete(ctx context.Context, userID, reportID string) error {
	id, err := uuid.Parse(reportID)
	if err != nil {
		return shared.NewDomainError("INVALID_ID", "Invalid report ID")
	}
	return s.reportRepo.Delete(ctx, userID, id)
}
