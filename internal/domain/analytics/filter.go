package analytics

// ApplyFilters returns the records matching every non-empty filter field.
// Date bounds are inclusive and compared lexically, which is correct for
// zero-padded ISO dates. The filter is pure and idempotent.
func ApplyFilters(records []SalesRecord, filter FilterState) []SalesRecord {
	if filter.IsZero() {
		return records
	}

	out := make([]SalesRecord, 0, len(records))
	for _, r := range records {
		if filter.DateFrom != "" && r.DateOfSale < filter.DateFrom {
			continue
		}
		if filter.DateTo != "" && r.DateOfSale > filter.DateTo {
			continue
		}
		if filter.Category != "" && r.Category != filter.Category {
			continue
		}
		if filter.Product != "" && r.ProductName != filter.Product {
			continue
		}
		out = append(out, r)
	}
	return out
}
