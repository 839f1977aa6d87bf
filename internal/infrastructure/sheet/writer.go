package sheet

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the worksheet name used when none is configured
const DefaultSheetName = "Orders"

// Write assembles a workbook holding a header row followed by one row per
// record and returns its serialized bytes. The whole dataset is materialized
// before serialization; there is no row limit.
func Write(headers []string, rows [][]any, sheetName string) ([]byte, error) {
	if sheetName == "" {
		sheetName = DefaultSheetName
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to name worksheet: %w", err)
	}

	headerRow := make([]any, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("failed to compute cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, axis, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// FileName builds the suggested export file name: a fixed prefix plus a
// second-resolution timestamp. Collisions are possible only within the same
// second.
func FileName(prefix string, now time.Time) string {
	return prefix + now.Format("20060102_150405") + ".xlsx"
}
