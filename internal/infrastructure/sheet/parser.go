package sheet

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Row is one data row of the tabular input: a fixed-width sequence of cells
// together with its 1-based source row number for error reporting.
type Row struct {
	Number int
	Cells  []Cell
}

// Cell returns the cell at the given column, or the empty cell when the row
// is shorter than the layout.
func (r Row) Cell(col int) Cell {
	if col < 0 || col >= len(r.Cells) {
		return EmptyCell()
	}
	return r.Cells[col]
}

// IsBlank reports whether every cell of the row is empty
func (r Row) IsBlank() bool {
	for _, c := range r.Cells {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Parse reads a workbook from raw bytes and returns its data rows. The first
// sheet is used; the first row is always the header and is skipped. Blank
// rows are kept (callers decide how to count them) and original row numbers
// are preserved.
func Parse(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoWorksheet
	}
	sheetName := sheets[0]

	raw, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(raw) <= 1 {
		return nil, nil
	}

	rows := make([]Row, 0, len(raw)-1)
	for i, fields := range raw[1:] {
		number := i + 2 // header is row 1
		row := Row{Number: number, Cells: make([]Cell, ImportColumnCount)}
		for col := 0; col < ImportColumnCount; col++ {
			value := ""
			if col < len(fields) {
				value = fields[col]
			}
			row.Cells[col] = buildCell(f, sheetName, col, number, value)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// buildCell resolves the raw cell shape once: rich text cells are unwrapped
// to their concatenated run text, everything else becomes a plain text cell.
func buildCell(f *excelize.File, sheetName string, col, row int, value string) Cell {
	axis, err := excelize.CoordinatesToCellName(col+1, row)
	if err != nil {
		return TextCell(value)
	}
	runs, err := f.GetCellRichText(sheetName, axis)
	if err == nil && len(runs) > 1 {
		texts := make([]string, len(runs))
		for i, run := range runs {
			texts[i] = run.Text
		}
		return RichCell(texts)
	}
	return TextCell(value)
}
