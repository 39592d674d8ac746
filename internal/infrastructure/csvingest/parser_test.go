package csvingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParser(t *testing.T) {
	t.Run("Valid UTF-8 CSV", func(t *testing.T) {
		csv := "Product,Quantity,Revenue\nWidget,3,30\nGadget,1,50"
		parser, err := NewParser(strings.NewReader(csv))

		require.NoError(t, err)
		require.NotNil(t, parser)
	})

	t.Run("UTF-8 BOM is stripped", func(t *testing.T) {
		// UTF-8 BOM: 0xEF, 0xBB, 0xBF
		csv := "\xEF\xBB\xBFProduct,Revenue\nWidget,30"
		parser, err := NewParser(strings.NewReader(csv))

		require.NoError(t, err)
		require.NotNil(t, parser)

		require.NoError(t, parser.ParseHeader())

		// Header should not include BOM
		headers := parser.Headers()
		assert.Equal(t, "Product", headers[0])
	})

	t.Run("Empty file returns error", func(t *testing.T) {
		parser, err := NewParser(strings.NewReader(""))

		assert.Error(t, err)
		assert.Nil(t, parser)
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("Invalid encoding returns error", func(t *testing.T) {
		_, err := NewParser(strings.NewReader("Product\n\xff\xfe\xfd"))
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("Custom delimiter", func(t *testing.T) {
		csv := "Product;Quantity;Revenue\nWidget;3;30"
		parser, err := NewParser(strings.NewReader(csv), WithDelimiter(';'))

		require.NoError(t, err)
		require.NoError(t, parser.ParseHeader())

		assert.Equal(t, []string{"Product", "Quantity", "Revenue"}, parser.Headers())
	})
}

func TestParseHeader(t *testing.T) {
	t.Run("trims header whitespace", func(t *testing.T) {
		parser, err := NewParser(strings.NewReader(" Product , Revenue \nWidget,30"))
		require.NoError(t, err)
		require.NoError(t, parser.ParseHeader())

		assert.True(t, parser.HasHeader("Product"))
		assert.True(t, parser.HasHeader("Revenue"))
	})
}

func TestReadAllRows(t *testing.T) {
	t.Run("maps fields to headers", func(t *testing.T) {
		csv := "Product,Quantity,Revenue\nWidget,3,30\nGadget,1,50"
		parser, err := NewParser(strings.NewReader(csv))
		require.NoError(t, err)
		require.NoError(t, parser.ParseHeader())

		rows, err := parser.ReadAllRows()
		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "Widget", rows[0].Get("Product"))
		assert.Equal(t, "30", rows[0].Get("Revenue"))
		assert.Equal(t, "Gadget", rows[1].Get("Product"))
	})

	t.Run("skips empty rows and numbers data rows from one", func(t *testing.T) {
		csv := "Product,Revenue\nWidget,30\n,\nGadget,50\n"
		parser, err := NewParser(strings.NewReader(csv))
		require.NoError(t, err)
		require.NoError(t, parser.ParseHeader())

		rows, err := parser.ReadAllRows()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, 1, rows[0].Number)
		assert.Equal(t, 2, rows[1].Number)
	})

	t.Run("short rows pad missing fields", func(t *testing.T) {
		csv := "Product,Category,Revenue\nWidget\n"
		parser, err := NewParser(strings.NewReader(csv))
		require.NoError(t, err)
		require.NoError(t, parser.ParseHeader())

		rows, err := parser.ReadAllRows()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "Widget", rows[0].Get("Product"))
		assert.Equal(t, "", rows[0].Get("Category"))
	})
}
