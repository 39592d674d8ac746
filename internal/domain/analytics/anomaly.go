package analytics

import (
	"fmt"
	"math"
)

// Anomaly detection defaults: a value is anomalous when it deviates from
// the mean by more than 2 population standard deviations, and a bucket
// needs at least 3 samples before deviation is meaningful.
const (
	DefaultAnomalyThreshold  = 2.0
	DefaultAnomalyMinSamples = 3
	maxAnomalyAlerts         = 10
)

// AnomalyDetector flags statistical outliers in daily revenue and
// per-product sale quantities. The zero value is not usable; use
// NewAnomalyDetector.
type AnomalyDetector struct {
	// Threshold is the number of standard deviations beyond which a
	// value is reported.
	Threshold float64
	// MinSamples is the minimum bucket size for a pass to run.
	MinSamples int
}

// NewAnomalyDetector returns a detector with the default threshold and
// minimum sample size.
func NewAnomalyDetector() *AnomalyDetector {
	return &AnomalyDetector{
		Threshold:  DefaultAnomalyThreshold,
		MinSamples: DefaultAnomalyMinSamples,
	}
}

// Detect runs both passes over the record set and returns human-readable
// alerts, daily revenue alerts first, capped at 10 total.
func (d *AnomalyDetector) Detect(records []SalesRecord) []string {
	alerts := d.dailyRevenueAlerts(records)
	alerts = append(alerts, d.productQuantityAlerts(records)...)
	if len(alerts) > maxAnomalyAlerts {
		alerts = alerts[:maxAnomalyAlerts]
	}
	return alerts
}

// DetectAnomalies runs the detector with default settings.
func DetectAnomalies(records []SalesRecord) []string {
	return NewAnomalyDetector().Detect(records)
}

// dailyRevenueAlerts flags days whose total revenue deviates from the
// mean daily revenue by more than Threshold standard deviations. Fewer
// than MinSamples distinct days produce no alerts.
func (d *AnomalyDetector) dailyRevenueAlerts(records []SalesRecord) []string {
	revenueByDay := make(map[string]float64)
	var days []string
	for _, r := range records {
		day := r.Day()
		if _, seen := revenueByDay[day]; !seen {
			days = append(days, day)
		}
		revenueByDay[day] += r.Revenue
	}
	if len(days) < d.MinSamples {
		return nil
	}

	values := make([]float64, len(days))
	for i, day := range days {
		values[i] = revenueByDay[day]
	}
	mean, stdDev := populationStats(values)

	var alerts []string
	for _, day := range days {
		rev := revenueByDay[day]
		if math.Abs(rev-mean) > d.Threshold*stdDev {
			dir := "spike"
			if rev < mean {
				dir = "drop"
			}
			alerts = append(alerts, fmt.Sprintf("Unusual %s on %s: revenue %.2f (avg %.0f)", dir, day, rev, mean))
		}
	}
	return alerts
}

// productQuantityAlerts flags individual sales whose quantity deviates
// from the product's mean quantity by more than Threshold standard
// deviations. Products with fewer than MinSamples sales are skipped.
func (d *AnomalyDetector) productQuantityAlerts(records []SalesRecord) []string {
	quantities := make(map[string][]float64)
	var products []string
	for _, r := range records {
		if _, seen := quantities[r.ProductName]; !seen {
			products = append(products, r.ProductName)
		}
		quantities[r.ProductName] = append(quantities[r.ProductName], float64(r.QuantitySold))
	}

	var alerts []string
	for _, name := range products {
		values := quantities[name]
		if len(values) < d.MinSamples {
			continue
		}
		mean, stdDev := populationStats(values)
		for _, q := range values {
			if math.Abs(q-mean) > d.Threshold*stdDev {
				alerts = append(alerts, fmt.Sprintf("%s: unusual quantity %d (avg %.0f)", name, int(q), mean))
			}
		}
	}
	return alerts
}

// populationStats returns the mean and population standard deviation
// (divisor n, not n-1) of values. values must be non-empty.
func populationStats(values []float64) (mean, stdDev float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	var sumSq float64
	for _, v := range values {
		sumSq += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(sumSq / float64(len(values)))
}
