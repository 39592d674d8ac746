// Package export renders filtered datasets as CSV files and tabular
// summaries for download.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/salespulse/backend/internal/domain/analytics"
	"github.com/salespulse/backend/internal/domain/dataset"
)

// Table is one exportable block of the dashboard.
type Table struct {
	Title   string     `json:"title"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// ExportService renders datasets for download
type ExportService struct {
	recordRepo dataset.RecordRepository
}

// NewExportService creates a new ExportService
func NewExportService(recordRepo dataset.RecordRepository) *ExportService {
	return &ExportService{recordRepo: recordRepo}
}

var recordsHeader = []string{"Product Name", "Category", "Date of Sale", "Quantity Sold", "Revenue"}

// WriteRecordsCSV streams the filtered dataset as CSV.
func (s *ExportService) WriteRecordsCSV(ctx context.Context, userID, datasetName string, filter analytics.FilterState, w io.Writer) error {
	records, err := s.loadRecords(ctx, userID, datasetName, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(recordsHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.ProductName,
			r.Category,
			r.DateOfSale,
			strconv.Itoa(r.QuantitySold),
			money(r.Revenue),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// BuildSummaryTables renders the dashboard panels of a filtered dataset
// as exportable tables.
func (s *ExportService) BuildSummaryTables(ctx context.Context, userID, datasetName string, filter analytics.FilterState) ([]Table, error) {
	records, err := s.loadRecords(ctx, userID, datasetName, filter)
	if err != nil {
		return nil, err
	}

	stats := analytics.ComputeDashboardStats(records)
	overview := Table{
		Title:   "Overview",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total units sold", strconv.Itoa(stats.TotalSales)},
			{"Total revenue", money(stats.TotalRevenue)},
			{"Top product", stats.TopProduct},
			{"Lowest product", stats.LowestProduct},
			{"Average order value", money(stats.AvgOrderValue)},
			{"Distinct products", strconv.Itoa(stats.TotalProducts)},
		},
	}

	products := Table{
		Title:   "Products",
		Headers: []string{"Product", "Category", "Units", "Revenue", "Avg Revenue", "Sales", "Trend"},
	}
	for _, p := range analytics.ComputeProductSummaries(records) {
		products.Rows = append(products.Rows, []string{
			p.ProductName,
			p.Category,
			strconv.Itoa(p.TotalQuantity),
			money(p.TotalRevenue),
			money(p.AvgRevenue),
			strconv.Itoa(p.SalesCount),
			string(p.Trend),
		})
	}

	categories := Table{
		Title:   "Categories",
		Headers: []string{"Category", "Revenue", "Units", "Products"},
	}
	for _, c := range analytics.ComputeCategoryPerformance(records) {
		categories.Rows = append(categories.Rows, []string{
			c.Category,
			money(c.TotalRevenue),
			strconv.Itoa(c.TotalQuantity),
			strconv.Itoa(c.ProductCount),
		})
	}

	daily := Table{
		Title:   "Daily Sales",
		Headers: []string{"Date", "Units", "Revenue"},
	}
	for _, p := range analytics.ComputeTimeSeries(records) {
		daily.Rows = append(daily.Rows, []string{
			p.Date,
			strconv.Itoa(p.Quantity),
			money(p.Revenue),
		})
	}

	return []Table{overview, products, categories, daily}, nil
}

// FileName builds a download name like sales_default_2024-03-01.csv.
func FileName(datasetName string, now time.Time) string {
	return fmt.Sprintf("sales_%s_%s.csv", datasetName, now.Format("2006-01-02"))
}

func (s *ExportService) loadRecords(ctx context.Context, userID, datasetName string, filter analytics.FilterState) ([]analytics.SalesRecord, error) {
	if err := dataset.ValidateName(datasetName); err != nil {
		return nil, err
	}
	rows, err := s.recordRepo.FindByDataset(ctx, userID, datasetName)
	if err != nil {
		return nil, err
	}
	return analytics.ApplyFilters(dataset.ToAnalyticsRecords(rows), filter), nil
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
