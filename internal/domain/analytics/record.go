package analytics

// SalesRecord is one transaction line, the canonical shape every
// aggregation consumes. Records are immutable once created; aggregation
// functions never modify their input.
type SalesRecord struct {
	ID           string  `json:"id"`
	ProductName  string  `json:"product_name"`
	Category     string  `json:"category"`
	DateOfSale   string  `json:"date_of_sale"` // ISO-8601, zero-padded; compared lexically
	QuantitySold int     `json:"quantity_sold"`
	Revenue      float64 `json:"revenue"`
}

// DefaultCategory is assigned when a record carries no category.
const DefaultCategory = "Uncategorized"

// Day returns the day-granularity bucket for the record's sale date.
// Timestamps finer than a day collapse onto their calendar day.
func (r SalesRecord) Day() string {
	if len(r.DateOfSale) > 10 {
		return r.DateOfSale[:10]
	}
	return r.DateOfSale
}

// Trend classifies a product's revenue momentum.
type Trend string

const (
	TrendGrowing   Trend = "growing"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// DashboardStats is the headline summary of a record set.
type DashboardStats struct {
	TotalSales    int     `json:"total_sales"`
	TotalRevenue  float64 `json:"total_revenue"`
	TopProduct    string  `json:"top_product"`
	LowestProduct string  `json:"lowest_product"`
	AvgOrderValue float64 `json:"avg_order_value"`
	TotalProducts int     `json:"total_products"`
}

// ProductSummary is the per-product rollup, one entry per distinct
// product name within a record set.
type ProductSummary struct {
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	TotalQuantity int     `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgRevenue    float64 `json:"avg_revenue"`
	SalesCount    int     `json:"sales_count"`
	Trend         Trend   `json:"trend"`
}

// TimeSeriesPoint aggregates one calendar day of a record set.
type TimeSeriesPoint struct {
	Date     string  `json:"date"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// CategoryPerformance is the per-category rollup.
type CategoryPerformance struct {
	Category      string  `json:"category"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalQuantity int     `json:"total_quantity"`
	ProductCount  int     `json:"product_count"`
}

// FilterState is an active view filter over a loaded record set.
// Empty fields impose no constraint.
type FilterState struct {
	DateFrom string `json:"date_from" form:"date_from"`
	DateTo   string `json:"date_to" form:"date_to"`
	Category string `json:"category" form:"category"`
	Product  string `json:"product" form:"product"`
}

// IsZero reports whether no filter field is set.
func (f FilterState) IsZero() bool {
	return f.DateFrom == "" && f.DateTo == "" && f.Category == "" && f.Product == ""
}
