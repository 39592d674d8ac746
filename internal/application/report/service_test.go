package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/domain/insight"
	"github.com/salespulse/backend/internal/domain/shared"
)

func testAnalysis() insight.Analysis {
	return insight.Analysis{
		Trends:   []string{"Revenue is trending up"},
		Insights: []string{"Bundle the slow movers"},
		Summary:  "Looking healthy overall.",
	}
}

func testRecords(t *testing.T) []dataset.Record {
	t.Helper()
	out := make([]dataset.Record, 0, 2)
	for _, spec := range []struct {
		product, category, date string
		qty                     int
		revenue                 float64
	}{
		{"Widget", "Tools", "2024-03-01", 5, 50},
		{"Gadget", "Toys", "2024-03-02", 2, 30},
	} {
		r, err := dataset.NewRecord("user-1", "default", analytics.SalesRecord{
			ID:           uuid.NewString(),
			ProductName:  spec.product,
			Category:     spec.category,
			DateOfSale:   spec.date,
			QuantitySold: spec.qty,
			Revenue:      spec.revenue,
		})
		require.NoError(t, err)
		out = append(out, *r)
	}
	return out
}

func TestReportService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("digests, analyzes, and stores", func(t *testing.T) {
		recordRepo := new(MockRecordRepository)
		recordRepo.On("FindByDataset", ctx, "user-1", "default").Return(testRecords(t), nil)

		analyzer := new(MockAnalyzer)
		var gotDigest string
		analyzer.On("Analyze", ctx, mock.Anything).Run(func(args mock.Arguments) {
			gotDigest = args.String(1)
		}).Return(testAnalysis(), nil)

		reportRepo := new(MockAIReportRepository)
		var stored *dataset.AIReport
		reportRepo.On("Save", ctx, mock.Anything).Run(func(args mock.Arguments) {
			stored = args.Get(1).(*dataset.AIReport)
		}).Return(nil)

		svc := NewReportService(recordRepo, reportRepo, analyzer)
		resp, err := svc.Generate(ctx, "user-1", "default", analytics.FilterState{})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(gotDigest, "Overall:"))
		require.NotNil(t, stored)
		assert.Equal(t, 2, stored.RecordCount)
		assert.Equal(t, 2, resp.RecordCount)
		assert.Equal(t, "Looking healthy overall.", resp.Analysis.Summary)
	})

	t.Run("filter narrows the digested view", func(t *testing.T) {
		recordRepo := new(MockRecordRepository)
		recordRepo.On("FindByDataset", ctx, "user-1", "default").Return(testRecords(t), nil)

		analyzer := new(MockAnalyzer)
		analyzer.On("Analyze", ctx, mock.Anything).Return(testAnalysis(), nil)

		reportRepo := new(MockAIReportRepository)
		reportRepo.On("Save", ctx, mock.Anything).Return(nil)

		svc := NewReportService(recordRepo, reportRepo, analyzer)
		resp, err := svc.Generate(ctx, "user-1", "default", analytics.FilterState{Category: "Tools"})

		require.NoError(t, err)
		assert.Equal(t, 1, resp.RecordCount)
	})

	t.Run("empty view is rejected without calling the analyzer", func(t *testing.T) {
		recordRepo := new(MockRecordRepository)
		recordRepo.On("FindByDataset", ctx, "user-1", "default").Return([]dataset.Record{}, nil)

		analyzer := new(MockAnalyzer)
		svc := NewReportService(recordRepo, new(MockAIReportRepository), analyzer)

		_, err := svc.Generate(ctx, "user-1", "default", analytics.FilterState{})

		assert.ErrorIs(t, err, ErrNoRecords)
		analyzer.AssertNotCalled(t, "Analyze", mock.Anything, mock.Anything)
	})

	t.Run("analyzer failures are not stored", func(t *testing.T) {
		recordRepo := new(MockRecordRepository)
		recordRepo.On("FindByDataset", ctx, "user-1", "default").Return(testRecords(t), nil)

		analyzer := new(MockAnalyzer)
		analyzer.On("Analyze", ctx, mock.Anything).Return(insight.Analysis{}, errors.New("provider down"))

		reportRepo := new(MockAIReportRepository)
		svc := NewReportService(recordRepo, reportRepo, analyzer)

		_, err := svc.Generate(ctx, "user-1", "default", analytics.FilterState{})

		assert.Error(t, err)
		reportRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestReportService_ListAndGet(t *testing.T) {
	ctx := context.Background()

	stored, err := dataset.NewAIReport("user-1", "default", 2, "Overall: ...", testAnalysis())
	require.NoError(t, err)

	t.Run("list decodes stored analyses", func(t *testing.T) {
		reportRepo := new(MockAIReportRepository)
		reportRepo.On("FindAllForUser", ctx, "user-1").Return([]dataset.AIReport{*stored}, nil)

		svc := NewReportService(new(MockRecordRepository), reportRepo, new(MockAnalyzer))
		reports, err := svc.List(ctx, "user-1")

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Equal(t, stored.ID.String(), reports[0].ID)
		assert.Equal(t, []string{"Revenue is trending up"}, reports[0].Analysis.Trends)
	})

	t.Run("get returns one report", func(t *testing.T) {
		reportRepo := new(MockAIReportRepository)
		reportRepo.On("FindByID", ctx, "user-1", stored.ID).Return(stored, nil)

		svc := NewReportService(new(MockRecordRepository), reportRepo, new(MockAnalyzer))
		resp, err := svc.Get(ctx, "user-1", stored.ID.String())

		require.NoError(t, err)
		assert.Equal(t, "default", resp.DatasetName)
	})

	t.Run("get rejects malformed IDs", func(t *testing.T) {
		svc := NewReportService(new(MockRecordRepository), new(MockAIReportRepository), new(MockAnalyzer))
		_, err := svc.Get(ctx, "user-1", "nope")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_ID", domainErr.Code)
	})
}

func TestReportService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	reportRepo := new(MockAIReportRepository)
	reportRepo.On("Delete", ctx, "user-1", id).Return(nil)

	svc := NewReportService(new(MockRecordRepository), reportRepo, new(MockAnalyzer))
	require.NoError(t, svc.Delete(ctx, "user-1", id.String()))
	reportRepo.AssertExpectations(t)
}
