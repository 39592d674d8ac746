package analytics

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// BuildDigest renders a compact plain-text summary of a record set for
// the AI-insight service. The digest carries the headline stats, one line
// per product with its trend, one line per category, and the date range;
// the insight service treats it as opaque text.
func BuildDigest(records []SalesRecord) string {
	stats := ComputeDashboardStats(records)
	products := ComputeProductSummaries(records)
	categories := ComputeCategoryPerformance(records)

	productParts := make([]string, len(products))
	for i, p := range products {
		productParts[i] = fmt.Sprintf("%s(%s):%s,%du,%s",
			p.ProductName, p.Category, money(p.TotalRevenue), p.TotalQuantity, p.Trend)
	}
	categoryParts := make([]string, len(categories))
	for i, c := range categories {
		categoryParts[i] = fmt.Sprintf("%s:%s,%du", c.Category, money(c.TotalRevenue), c.TotalQuantity)
	}

	from, to := DateRange(records)

	var b strings.Builder
	fmt.Fprintf(&b, "Overall: %d units, %s revenue, %d products.\n",
		stats.TotalSales, money(stats.TotalRevenue), stats.TotalProducts)
	fmt.Fprintf(&b, "Top: %s, Lowest: %s.\n", stats.TopProduct, stats.LowestProduct)
	fmt.Fprintf(&b, "Products: %s\n", strings.Join(productParts, "; "))
	fmt.Fprintf(&b, "Categories: %s\n", strings.Join(categoryParts, "; "))
	fmt.Fprintf(&b, "Date range: %s to %s", from, to)
	return b.String()
}

// DateRange returns the earliest and latest sale dates in a record set,
// or empty strings for the empty set.
func DateRange(records []SalesRecord) (from, to string) {
	for _, r := range records {
		if from == "" || r.DateOfSale < from {
			from = r.DateOfSale
		}
		if to == "" || r.DateOfSale > to {
			to = r.DateOfSale
		}
	}
	return from, to
}

// money renders a float revenue amount without binary-float noise.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
