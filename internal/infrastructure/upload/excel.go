package upload

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Workbook wraps an uploaded Excel file and exposes its first sheet as
// header-mapped rows, mirroring the CSV parser.
type Workbook struct {
	file      *excelize.File
	sheet     string
	headers   []string
	headerMap map[string]int
	rows      []*Row
}

// OpenWorkbook reads an xlsx workbook from r. The first sheet is used.
func OpenWorkbook(r io.Reader) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		_ = f.Close()
		return nil, ErrEmptyFile
	}

	wb := &Workbook{
		file:      f,
		sheet:     sheets[0],
		headerMap: make(map[string]int),
	}

	if err := wb.load(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return wb, nil
}

func (wb *Workbook) load() error {
	raw, err := wb.file.GetRows(wb.sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", wb.sheet, err)
	}

	if len(raw) == 0 {
		return ErrMissingHeader
	}

	for i, h := range raw[0] {
		header := strings.TrimSpace(h)
		wb.headers = append(wb.headers, header)
		wb.headerMap[header] = i
	}

	for i, record := range raw[1:] {
		row := &Row{
			LineNumber: i + 2, // header is row 1
			Data:       make(map[string]string, len(wb.headers)),
			RawFields:  record,
		}
		for j, header := range wb.headers {
			if j < len(record) {
				row.Data[header] = strings.TrimSpace(record[j])
			} else {
				row.Data[header] = ""
			}
		}
		if row.IsEmpty() {
			continue
		}
		wb.rows = append(wb.rows, row)
	}

	return nil
}

// Sheet returns the name of the sheet being read
func (wb *Workbook) Sheet() string {
	return wb.sheet
}

// Headers returns the parsed header names
func (wb *Workbook) Headers() []string {
	return wb.headers
}

// HasHeader checks if a header exists
func (wb *Workbook) HasHeader(name string) bool {
	_, ok := wb.headerMap[name]
	return ok
}

// ValidateHeaders checks that the sheet headers match the expected
// headers exactly, in order. Returns a description of each mismatch.
func (wb *Workbook) ValidateHeaders(expected []string) []string {
	var problems []string
	for i, want := range expected {
		if i >= len(wb.headers) {
			problems = append(problems, fmt.Sprintf("missing column %q at position %d", want, i+1))
			continue
		}
		if wb.headers[i] != want {
			problems = append(problems, fmt.Sprintf("column %d: expected %q, found %q", i+1, want, wb.headers[i]))
		}
	}
	for i := len(expected); i < len(wb.headers); i++ {
		if wb.headers[i] != "" {
			problems = append(problems, fmt.Sprintf("unexpected column %q at position %d", wb.headers[i], i+1))
		}
	}
	return problems
}

// Rows returns the data rows, empty rows skipped
func (wb *Workbook) Rows() []*Row {
	return wb.rows
}

// Close releases the underlying file
func (wb *Workbook) Close() error {
	return wb.file.Close()
}

// TemplateColumn describes one column of a downloadable template.
type TemplateColumn struct {
	Header      string
	Type        string
	Description string
	Example     string
}

// Template describes a downloadable Excel upload template: a data sheet
// with the expected headers and one example row, plus an Instructions
// sheet documenting each column.
type Template struct {
	SheetName string
	Columns   []TemplateColumn
}

// Headers returns the template's column headers in order
func (t Template) Headers() []string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Header
	}
	return headers
}

// Build renders the template as an xlsx workbook.
func (t Template) Build() (*excelize.File, error) {
	f := excelize.NewFile()

	sheet := t.SheetName
	if sheet == "" {
		sheet = "Data"
	}
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDEBF7"}},
	})
	if err != nil {
		return nil, err
	}

	for i, col := range t.Columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col.Header); err != nil {
			return nil, err
		}

		exampleCell, err := excelize.CoordinatesToCellName(i+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, exampleCell, col.Example); err != nil {
			return nil, err
		}

		colName, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := float64(len(col.Header)) + 6
		if width < 14 {
			width = 14
		}
		if err := f.SetColWidth(sheet, colName, colName, width); err != nil {
			return nil, err
		}
	}

	headerEnd, err := excelize.CoordinatesToCellName(len(t.Columns), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", headerEnd, headerStyle); err != nil {
		return nil, err
	}

	if err := t.buildInstructions(f, headerStyle); err != nil {
		return nil, err
	}

	return f, nil
}

func (t Template) buildInstructions(f *excelize.File, headerStyle int) error {
	const sheet = "Instructions"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Column", "Data Type", "Description", "Example"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
		return err
	}

	for i, col := range t.Columns {
		values := []string{col.Header, col.Type, col.Description, col.Example}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 26); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "B", "B", 14); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "C", "C", 52); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "D", "D", 20)
}

// WriteTo renders the template workbook into w.
func (t Template) WriteTo(w io.Writer) error {
	f, err := t.Build()
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}
