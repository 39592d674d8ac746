package csvingest

import (
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/salespulse/backend/internal/domain/analytics"
)

// FieldAliases lists the candidate column headers per logical field, in
// resolution order. The first candidate present with a non-empty value
// wins. The table is data so new spellings are configuration, not code.
type FieldAliases struct {
	ProductName []string
	Category    []string
	DateOfSale  []string
	Quantity    []string
	Revenue     []string
}

// DefaultAliases returns the header spellings accepted out of the box.
func DefaultAliases() FieldAliases {
	return FieldAliases{
		ProductName: []string{"Product Name", "product_name", "productName", "Product"},
		Category:    []string{"Category", "category"},
		DateOfSale:  []string{"Date of Sale", "date_of_sale", "dateOfSale", "Date", "date"},
		Quantity:    []string{"Quantity Sold", "quantity_sold", "quantitySold", "Quantity"},
		Revenue:     []string{"Revenue", "revenue", "Total", "total"},
	}
}

// Normalizer converts parsed CSV rows into canonical sales records.
type Normalizer struct {
	aliases FieldAliases
	maxRows int
}

// NormalizerOption is a functional option for Normalizer configuration
type NormalizerOption func(*Normalizer)

// WithAliases overrides the header alias table
func WithAliases(a FieldAliases) NormalizerOption {
	return func(n *Normalizer) {
		n.aliases = a
	}
}

// WithMaxRows caps the number of data rows accepted per file
func WithMaxRows(max int) NormalizerOption {
	return func(n *Normalizer) {
		n.maxRows = max
	}
}

// NewNormalizer creates a normalizer with the default alias table.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	n := &Normalizer{
		aliases: DefaultAliases(),
		maxRows: 50000,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// NormalizeFile parses a CSV stream and normalizes every data row.
// Validation is fail-fast: the first bad row rejects the whole file.
func (n *Normalizer) NormalizeFile(r io.Reader) ([]analytics.SalesRecord, error) {
	parser, err := NewParser(r)
	if err != nil {
		return nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, err
	}
	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, err
	}
	return n.NormalizeRows(rows)
}

// NormalizeRows converts parsed rows into records. A row with no product
// name after trimming fails the batch with its 1-based row number;
// unparsable quantity and revenue values are coerced to zero.
func (n *Normalizer) NormalizeRows(rows []*Row) ([]analytics.SalesRecord, error) {
	if len(rows) == 0 {
		return nil, ErrNoDataRows
	}
	if n.maxRows > 0 && len(rows) > n.maxRows {
		return nil, NewRowError(n.maxRows+1, "", ErrCodeIngestTooManyRows, "file exceeds the maximum number of rows")
	}

	records := make([]analytics.SalesRecord, 0, len(rows))
	for _, row := range rows {
		record, err := n.normalizeRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (n *Normalizer) normalizeRow(row *Row) (analytics.SalesRecord, error) {
	productName := resolve(row, n.aliases.ProductName)
	if productName == "" {
		return analytics.SalesRecord{}, NewRowError(row.Number, "product name",
			ErrCodeIngestRequiredField, "product name is required")
	}

	category := resolve(row, n.aliases.Category)
	if category == "" {
		category = analytics.DefaultCategory
	}

	return analytics.SalesRecord{
		ID:           uuid.NewString(),
		ProductName:  productName,
		Category:     category,
		DateOfSale:   resolve(row, n.aliases.DateOfSale),
		QuantitySold: parseIntOrZero(resolve(row, n.aliases.Quantity)),
		Revenue:      parseFloatOrZero(resolve(row, n.aliases.Revenue)),
	}, nil
}

// resolve returns the first non-empty value among the candidate headers.
func resolve(row *Row, candidates []string) string {
	for _, header := range candidates {
		if v := strings.TrimSpace(row.Get(header)); v != "" {
			return v
		}
	}
	return ""
}

func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
