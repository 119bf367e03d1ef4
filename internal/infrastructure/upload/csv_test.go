package upload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVParser(t *testing.T) {
	t.Run("parses header and rows", func(t *testing.T) {
		csv := "company_id,year,volume\nPSC,2024,1200.5\nMGI,2024,88\n"
		p, err := NewCSVParser(strings.NewReader(csv))
		require.NoError(t, err)
		require.NoError(t, p.ParseHeader())

		assert.Equal(t, []string{"company_id", "year", "volume"}, p.Headers())
		assert.True(t, p.HasHeader("year"))
		assert.False(t, p.HasHeader("quarter"))

		rows, err := p.ReadAllRows()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "PSC", rows[0].Get("company_id"))
		assert.Equal(t, "1200.5", rows[0].Get("volume"))
		assert.Equal(t, 2, rows[0].LineNumber)
		assert.Equal(t, 3, rows[1].LineNumber)
	})

	t.Run("strips UTF-8 BOM", func(t *testing.T) {
		csv := "\xEF\xBB\xBFcompany_id,year\nPSC,2024\n"
		p, err := NewCSVParser(strings.NewReader(csv))
		require.NoError(t, err)
		require.NoError(t, p.ParseHeader())
		assert.Equal(t, "company_id", p.Headers()[0])
	})

	t.Run("rejects empty file", func(t *testing.T) {
		_, err := NewCSVParser(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("rejects non-UTF8 content", func(t *testing.T) {
		_, err := ParseFromBytes([]byte{0xFF, 0xFE, 0x41, 0x00})
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("skips empty rows", func(t *testing.T) {
		csv := "a,b\n1,2\n,\n3,4\n"
		p, err := NewCSVParser(strings.NewReader(csv))
		require.NoError(t, err)
		require.NoError(t, p.ParseHeader())

		rows, err := p.ReadAllRows()
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("short rows pad missing columns", func(t *testing.T) {
		csv := "a,b,c\n1,2\n"
		p, err := NewCSVParser(strings.NewReader(csv))
		require.NoError(t, err)
		require.NoError(t, p.ParseHeader())

		rows, err := p.ReadAllRows()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "", rows[0].Get("c"))
	})

	t.Run("ValidateHeaders reports missing columns", func(t *testing.T) {
		csv := "a,b\n1,2\n"
		p, err := NewCSVParser(strings.NewReader(csv))
		require.NoError(t, err)
		require.NoError(t, p.ParseHeader())

		missing := p.ValidateHeaders([]string{"a", "b", "c"})
		assert.Equal(t, []string{"c"}, missing)
	})
}
