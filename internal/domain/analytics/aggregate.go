package analytics

import "sort"

// Trend thresholds: second-half revenue must exceed first-half revenue by
// more than 10% to count as growing, or fall short by more than 10% to
// count as declining.
const (
	trendGrowthFactor  = 1.1
	trendDeclineFactor = 0.9
)

// EmptyPlaceholder is reported for top/lowest product on an empty record set.
const EmptyPlaceholder = "-"

// ComputeDashboardStats derives the headline stats for a record set.
// The empty set yields the zero sentinel: all totals zero and the "-"
// placeholder for both product names.
func ComputeDashboardStats(records []SalesRecord) DashboardStats {
	if len(records) == 0 {
		return DashboardStats{TopProduct: EmptyPlaceholder, LowestProduct: EmptyPlaceholder}
	}

	var totalSales int
	var totalRevenue float64
	revenueByProduct := make(map[string]float64)
	// Encounter order decides ties for top/lowest product, so the
	// grouping keeps insertion order alongside the map.
	var order []string

	for _, r := range records {
		totalSales += r.QuantitySold
		totalRevenue += r.Revenue
		if _, seen := revenueByProduct[r.ProductName]; !seen {
			order = append(order, r.ProductName)
		}
		revenueByProduct[r.ProductName] += r.Revenue
	}

	sorted := make([]string, len(order))
	copy(sorted, order)
	sort.SliceStable(sorted, func(i, j int) bool {
		return revenueByProduct[sorted[i]] > revenueByProduct[sorted[j]]
	})

	return DashboardStats{
		TotalSales:    totalSales,
		TotalRevenue:  totalRevenue,
		TopProduct:    sorted[0],
		LowestProduct: sorted[len(sorted)-1],
		AvgOrderValue: totalRevenue / float64(len(records)),
		TotalProducts: len(sorted),
	}
}

// ComputeProductSummaries derives per-product rollups with trend
// classification, sorted descending by total revenue.
//
// A product's category is the category of the first record seen for it;
// later records under a different category do not change it.
func ComputeProductSummaries(records []SalesRecord) []ProductSummary {
	groups := make(map[string][]SalesRecord)
	category := make(map[string]string)
	var order []string

	for _, r := range records {
		if _, seen := groups[r.ProductName]; !seen {
			order = append(order, r.ProductName)
			category[r.ProductName] = r.Category
		}
		groups[r.ProductName] = append(groups[r.ProductName], r)
	}

	summaries := make([]ProductSummary, 0, len(order))
	for _, name := range order {
		group := groups[name]

		var totalQuantity int
		var totalRevenue float64
		for _, r := range group {
			totalQuantity += r.QuantitySold
			totalRevenue += r.Revenue
		}

		summaries = append(summaries, ProductSummary{
			ProductName:   name,
			Category:      category[name],
			TotalQuantity: totalQuantity,
			TotalRevenue:  totalRevenue,
			AvgRevenue:    totalRevenue / float64(len(group)),
			SalesCount:    len(group),
			Trend:         classifyTrend(group),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalRevenue > summaries[j].TotalRevenue
	})
	return summaries
}

// classifyTrend compares revenue between the chronological first and
// second halves of a product's sales. The split is at floor(n/2), so for
// odd counts the first half is the smaller one.
func classifyTrend(group []SalesRecord) Trend {
	byDate := make([]SalesRecord, len(group))
	copy(byDate, group)
	sort.SliceStable(byDate, func(i, j int) bool {
		return byDate[i].DateOfSale < byDate[j].DateOfSale
	})

	mid := len(byDate) / 2
	var firstHalf, secondHalf float64
	for _, r := range byDate[:mid] {
		firstHalf += r.Revenue
	}
	for _, r := range byDate[mid:] {
		secondHalf += r.Revenue
	}

	switch {
	case secondHalf > firstHalf*trendGrowthFactor:
		return TrendGrowing
	case secondHalf < firstHalf*trendDeclineFactor:
		return TrendDeclining
	default:
		return TrendStable
	}
}

// ComputeTimeSeries buckets a record set by calendar day and sums
// quantity and revenue per day, sorted ascending by date.
func ComputeTimeSeries(records []SalesRecord) []TimeSeriesPoint {
	buckets := make(map[string]*TimeSeriesPoint)
	for _, r := range records {
		day := r.Day()
		p, ok := buckets[day]
		if !ok {
			p = &TimeSeriesPoint{Date: day}
			buckets[day] = p
		}
		p.Quantity += r.QuantitySold
		p.Revenue += r.Revenue
	}

	points := make([]TimeSeriesPoint, 0, len(buckets))
	for _, p := range buckets {
		points = append(points, *p)
	}
	// Zero-padded ISO dates order correctly under lexical comparison.
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// ComputeCategoryPerformance derives per-category rollups, sorted
// descending by total revenue.
func ComputeCategoryPerformance(records []SalesRecord) []CategoryPerformance {
	type bucket struct {
		revenue  float64
		quantity int
		products map[string]struct{}
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, r := range records {
		b, ok := buckets[r.Category]
		if !ok {
			b = &bucket{products: make(map[string]struct{})}
			buckets[r.Category] = b
			order = append(order, r.Category)
		}
		b.revenue += r.Revenue
		b.quantity += r.QuantitySold
		b.products[r.ProductName] = struct{}{}
	}

	perf := make([]CategoryPerformance, 0, len(order))
	for _, cat := range order {
		b := buckets[cat]
		perf = append(perf, CategoryPerformance{
			Category:      cat,
			TotalRevenue:  b.revenue,
			TotalQuantity: b.quantity,
			ProductCount:  len(b.products),
		})
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].TotalRevenue > perf[j].TotalRevenue
	})
	return perf
}
