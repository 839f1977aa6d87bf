package sheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// CellKind discriminates the raw shapes a spreadsheet cell can arrive in.
type CellKind int

const (
	// CellEmpty is an absent or all-whitespace cell
	CellEmpty CellKind = iota
	// CellText is a plain text cell
	CellText
	// CellRich is a rich text cell composed of multiple styled runs
	CellRich
)

// Cell is a tagged variant over the raw cell shapes. It is resolved once at
// ingestion; downstream code only ever sees the plain-text representation and
// never branches on the original shape.
type Cell struct {
	kind CellKind
	text string
}

// EmptyCell returns the empty cell
func EmptyCell() Cell {
	return Cell{kind: CellEmpty}
}

// TextCell builds a plain text cell. The value is trimmed; an all-whitespace
// value collapses to the empty cell.
func TextCell(value string) Cell {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return EmptyCell()
	}
	return Cell{kind: CellText, text: trimmed}
}

// RichCell builds a cell from the concatenated text of rich text runs
func RichCell(runs []string) Cell {
	trimmed := strings.TrimSpace(strings.Join(runs, ""))
	if trimmed == "" {
		return EmptyCell()
	}
	return Cell{kind: CellRich, text: trimmed}
}

// Kind returns the cell's kind tag
func (c Cell) Kind() CellKind {
	return c.kind
}

// IsEmpty reports whether the cell carries no value
func (c Cell) IsEmpty() bool {
	return c.kind == CellEmpty
}

// Text returns the plain-text representation, or "" for the empty cell
func (c Cell) Text() string {
	return c.text
}

// dateLayouts are the textual date shapes accepted from spreadsheet cells,
// beyond the canonical YYYY-MM-DD form.
var dateLayouts = []string{
	"2006-01-02",
	"2006.01.02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"01-02-06", // excelize default short date rendering
	"1/2/06",
}

// NormalizeDateSeparators replaces every dot in a date string with a dash.
// The operation is total and idempotent: normalizing twice yields the same
// string.
func NormalizeDateSeparators(date string) string {
	return strings.ReplaceAll(date, ".", "-")
}

// NormalizeDateValue converts a raw date cell value into the canonical
// YYYY-MM-DD string. It accepts the textual layouts above as well as Excel
// serial date numbers. Values that do not resemble a date are returned
// trimmed and unchanged for the validator to flag.
func NormalizeDateValue(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format("2006-01-02")
		}
	}

	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil && serial >= 1 {
		if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
			return t.Format("2006-01-02")
		}
	}

	return trimmed
}
