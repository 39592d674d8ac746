package ingest

import (
	"time"

	"github.com/salespulse/backend/internal/domain/dataset"
)

// AddRecordRequest represents a manually entered sales record
type AddRecordRequest struct {
	ProductName  string  `json:"product_name" binding:"required,min=1,max=200"`
	Category     string  `json:"category" binding:"max=100"`
	DateOfSale   string  `json:"date_of_sale" binding:"required,isodate"`
	QuantitySold int     `json:"quantity_sold" binding:"min=0"`
	Revenue      float64 `json:"revenue" binding:"min=0"`
}

// ImportResult represents the outcome of a bulk load
type ImportResult struct {
	DatasetName  string `json:"dataset_name"`
	ImportedRows int    `json:"imported_rows"`
}

// RecordResponse represents a stored sales record in API responses
type RecordResponse struct {
	ID           string    `json:"id"`
	ProductName  string    `json:"product_name"`
	Category     string    `json:"category"`
	DateOfSale   string    `json:"date_of_sale"`
	QuantitySold int       `json:"quantity_sold"`
	Revenue      float64   `json:"revenue"`
	CreatedAt    time.Time `json:"created_at"`
}

// DatasetSummaryResponse represents a per-dataset rollup
type DatasetSummaryResponse struct {
	Name        string `json:"name"`
	RecordCount int64  `json:"record_count"`
	FirstDate   string `json:"first_date"`
	LastDate    string `json:"last_date"`
}

func toRecordResponse(r *dataset.Record) *RecordResponse {
	return &RecordResponse{
		ID:           r.ID.String(),
		ProductName:  r.ProductName,
		Category:     r.Category,
		DateOfSale:   r.DateOfSale,
		QuantitySold: r.QuantitySold,
		Revenue:      r.Revenue,
		CreatedAt:    r.CreatedAt,
	}
}

func toSummaryResponses(summaries []dataset.Summary) []DatasetSummaryResponse {
	out := make([]DatasetSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, DatasetSummaryResponse{
			Name:        s.Name,
			RecordCount: s.RecordCount,
			FirstDate:   s.FirstDate,
			LastDate:    s.LastDate,
		})
	}
	return out
}
