package sheet

import (
	"errors"
	"fmt"
)

// Pseudo-field names used for errors that are not tied to a single column
const (
	// FieldFile marks a file-level parse failure
	FieldFile = "file"
	// FieldBatch marks a whole-batch persistence failure
	FieldBatch = "batch"
	// FieldValidation marks a shape-validation message
	FieldValidation = "validation"
)

// Parse-level errors
var (
	// ErrNoWorksheet is returned when the workbook contains no worksheet
	ErrNoWorksheet = errors.New("workbook contains no worksheet")
)

// RowError represents a problem detected on a specific row. Row 0 is used
// for errors that concern the whole file or batch.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d, field '%s': %s", e.Row, e.Field, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a new RowError
func NewRowError(row int, field, message string) RowError {
	return RowError{
		Row:     row,
		Field:   field,
		Message: message,
	}
}

// NewRowErrorWithValue creates a new RowError carrying the offending value
func NewRowErrorWithValue(row int, field, message string, value any) RowError {
	return RowError{
		Row:     row,
		Field:   field,
		Message: message,
		Value:   value,
	}
}
