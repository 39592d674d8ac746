package analytics

import "github.com/salespulse/backend/internal/domain/shared"

// comparisonTopProducts limits the per-side product rollup to the most
// significant products for side-by-side display.
const comparisonTopProducts = 8

// ErrComparisonSideEmpty is returned when either side of a comparison
// resolves to no records; a one-sided comparison is never rendered.
var ErrComparisonSideEmpty = shared.NewDomainError("COMPARISON_SIDE_EMPTY", "Both comparison sides need at least one record")

// ComparisonSide holds the aggregates of one independently scoped record
// set within a comparison.
type ComparisonSide struct {
	Label       string            `json:"label"`
	RecordCount int               `json:"record_count"`
	Stats       DashboardStats    `json:"stats"`
	Products    []ProductSummary  `json:"products"`
	TimeSeries  []TimeSeriesPoint `json:"time_series"`
}

// Comparison pairs the aggregates of two record sets for side-by-side
// display. The sides are never merged or cross-aggregated.
type Comparison struct {
	SideA ComparisonSide `json:"side_a"`
	SideB ComparisonSide `json:"side_b"`
}

// Compare aggregates both record sets independently. It fails with
// ErrComparisonSideEmpty unless both sides are non-empty, so callers
// surface an error instead of a partial comparison.
func Compare(labelA string, a []SalesRecord, labelB string, b []SalesRecord) (*Comparison, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrComparisonSideEmpty
	}
	return &Comparison{
		SideA: compareSide(labelA, a),
		SideB: compareSide(labelB, b),
	}, nil
}

func compareSide(label string, records []SalesRecord) ComparisonSide {
	products := ComputeProductSummaries(records)
	if len(products) > comparisonTopProducts {
		products = products[:comparisonTopProducts]
	}
	return ComparisonSide{
		Label:       label,
		RecordCount: len(records),
		Stats:       ComputeDashboardStats(records),
		Products:    products,
		TimeSeries:  ComputeTimeSeries(records),
	}
}
