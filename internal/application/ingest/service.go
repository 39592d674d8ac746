// Package ingest loads sales records into a user's datasets, from CSV
// uploads, manual entry, or the built-in sample generator.
package ingest

import (
	"context"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/dataset"
	"github.com/salespulse/backend/internal/infrastructure/config"
	"github.com/salespulse/backend/internal/infrastructure/csvingest"
)

// IngestService handles loading records into datasets
type IngestService struct {
	recordRepo  dataset.RecordRepository
	normalizer  *csvingest.Normalizer
	maxFileSize int64
}

// NewIngestService creates a new IngestService
func NewIngestService(recordRepo dataset.RecordRepository, cfg config.IngestConfig) *IngestService {
	opts := []csvingest.NormalizerOption{}
	if cfg.MaxRows > 0 {
		opts = append(opts, csvingest.WithMaxRows(cfg.MaxRows))
	}
	return &IngestService{
		recordRepo:  recordRepo,
		normalizer:  csvingest.NewNormalizer(opts...),
		maxFileSize: cfg.MaxFileSize,
	}
}

// ImportCSV parses and stores an uploaded CSV file. The whole file is
// validated before anything is written; one bad row rejects the upload.
func (s *IngestService) ImportCSV(ctx context.Context, userID, datasetName string, file io.Reader, size int64) (*ImportResult, error) {
	if err := dataset.ValidateName(datasetName); err != nil {
		return nil, err
	}
	if s.maxFileSize > 0 && size > s.maxFileSize {
		return nil, csvingest.ErrFileTooLarge
	}

	normalized, err := s.normalizer.NormalizeFile(file)
	if err != nil {
		return nil, err
	}

	records := make([]*dataset.Record, 0, len(normalized))
	for i, row := range normalized {
		record, err := dataset.NewRecord(userID, datasetName, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		records = append(records, record)
	}

	// Uploading under an existing name replaces that dataset. The swap
	// is one transaction: a failed insert leaves the old rows in place.
	if err := s.recordRepo.ReplaceDataset(ctx, userID, datasetName, records); err != nil {
		return nil, err
	}

	return &ImportResult{DatasetName: datasetName, ImportedRows: len(records)}, nil
}

// AddRecord stores one manually entered record.
func (s *IngestService) AddRecord(ctx context.Context, userID, datasetName string, req AddRecordRequest) (*RecordResponse, error) {
	if err := dataset.ValidateName(datasetName); err != nil {
		return nil, err
	}

	record, err := dataset.NewRecord(userID, datasetName, analytics.SalesRecord{
		ID:           uuid.NewString(),
		ProductName:  req.ProductName,
		Category:     req.Category,
		DateOfSale:   req.DateOfSale,
		QuantitySold: req.QuantitySold,
		Revenue:      req.Revenue,
	})
	if err != nil {
		return nil, err
	}

	if err := s.recordRepo.SaveBatch(ctx, []*dataset.Record{record}); err != nil {
		return nil, err
	}
	return toRecordResponse(record), nil
}

// sampleProduct describes one product in the generated demo catalog.
type sampleProduct struct {
	name      string
	category  string
	unitPrice float64
}

var sampleCatalog = []sampleProduct{
	{"Wireless Mouse", "Electronics", 29.99},
	{"Mechanical Keyboard", "Electronics", 89.99},
	{"USB-C Hub", "Electronics", 49.99},
	{"Desk Lamp", "Home Office", 34.50},
	{"Standing Desk Mat", "Home Office", 59.00},
	{"Notebook Set", "Stationery", 12.99},
	{"Gel Pen Pack", "Stationery", 8.49},
	{"Water Bottle", "Lifestyle", 19.95},
}

const sampleDays = 90

// GenerateSample replaces the dataset with about three months of
// generated demo sales.
func (s *IngestService) GenerateSample(ctx context.Context, userID, datasetName string) (*ImportResult, error) {
	if err := dataset.ValidateName(datasetName); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	start := time.Now().AddDate(0, 0, -sampleDays)

	records := make([]*dataset.Record, 0, sampleDays*3)
	for day := 0; day < sampleDays; day++ {
		date := start.AddDate(0, 0, day).Format("2006-01-02")
		// weekends sell a little more
		sales := 1 + rng.Intn(3)
		if wd := start.AddDate(0, 0, day).Weekday(); wd == time.Saturday || wd == time.Sunday {
			sales++
		}
		for i := 0; i < sales; i++ {
			product := sampleCatalog[rng.Intn(len(sampleCatalog))]
			quantity := 1 + rng.Intn(12)
			revenue := float64(quantity) * product.unitPrice * (0.9 + 0.2*rng.Float64())
			revenue = math.Round(revenue*100) / 100

			record, err := dataset.NewRecord(userID, datasetName, analytics.SalesRecord{
				ID:           uuid.NewString(),
				ProductName:  product.name,
				Category:     product.category,
				DateOfSale:   date,
				QuantitySold: quantity,
				Revenue:      revenue,
			})
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		}
	}

	if err := s.recordRepo.ReplaceDataset(ctx, userID, datasetName, records); err != nil {
		return nil, err
	}
	return &ImportResult{DatasetName: datasetName, ImportedRows: len(records)}, nil
}
