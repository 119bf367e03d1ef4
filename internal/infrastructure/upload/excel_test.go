package upload

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func waterTemplate() Template {
	return Template{
		SheetName: "water_abstraction",
		Columns: []TemplateColumn{
			{Header: "company_id", Type: "string", Description: "Company identifier", Example: "PSC"},
			{Header: "year", Type: "int", Description: "Reporting year", Example: "2024"},
			{Header: "volume", Type: "decimal", Description: "Abstracted volume", Example: "1200.50"},
		},
	}
}

func TestTemplate_Build(t *testing.T) {
	tpl := waterTemplate()

	var buf bytes.Buffer
	require.NoError(t, tpl.WriteTo(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "water_abstraction")
	assert.Contains(t, sheets, "Instructions")

	rows, err := f.GetRows("water_abstraction")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"company_id", "year", "volume"}, rows[0])
	assert.Equal(t, "PSC", rows[1][0])

	instructions, err := f.GetRows("Instructions")
	require.NoError(t, err)
	require.Len(t, instructions, 4)
	assert.Equal(t, "Column", instructions[0][0])
	assert.Equal(t, "volume", instructions[3][0])
}

func TestOpenWorkbook(t *testing.T) {
	t.Run("reads a built template back", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, waterTemplate().WriteTo(&buf))

		wb, err := OpenWorkbook(&buf)
		require.NoError(t, err)
		defer wb.Close()

		assert.Equal(t, "water_abstraction", wb.Sheet())
		assert.Equal(t, []string{"company_id", "year", "volume"}, wb.Headers())

		rows := wb.Rows()
		require.Len(t, rows, 1)
		assert.Equal(t, "PSC", rows[0].Get("company_id"))
		assert.Equal(t, 2, rows[0].LineNumber)
	})

	t.Run("ValidateHeaders flags reordered columns", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, waterTemplate().WriteTo(&buf))

		wb, err := OpenWorkbook(&buf)
		require.NoError(t, err)
		defer wb.Close()

		problems := wb.ValidateHeaders([]string{"year", "company_id", "volume"})
		assert.Len(t, problems, 2)

		problems = wb.ValidateHeaders([]string{"company_id", "year", "volume"})
		assert.Empty(t, problems)
	})

	t.Run("rejects a non-workbook payload", func(t *testing.T) {
		_, err := OpenWorkbook(strings.NewReader("company_id,year\nPSC,2024\n"))
		assert.ErrorIs(t, err, ErrInvalidWorkbook)
	})
}
