package csvingest

import (
	"errors"
	"fmt"
)

// Ingestion error codes
const (
	ErrCodeIngestInvalidFile     = "ERR_INGEST_INVALID_FILE"
	ErrCodeIngestEmptyFile       = "ERR_INGEST_EMPTY_FILE"
	ErrCodeIngestFileTooLarge    = "ERR_INGEST_FILE_TOO_LARGE"
	ErrCodeIngestInvalidEncoding = "ERR_INGEST_INVALID_ENCODING"
	ErrCodeIngestMissingHeader   = "ERR_INGEST_MISSING_HEADER"
	ErrCodeIngestMissingColumn   = "ERR_INGEST_MISSING_COLUMN"
	ErrCodeIngestRequiredField   = "ERR_INGEST_REQUIRED_FIELD"
	ErrCodeIngestTooManyRows     = "ERR_INGEST_TOO_MANY_ROWS"
)

// Common ingestion errors
var (
	// ErrEmptyFile is returned when the CSV file is empty
	ErrEmptyFile = errors.New("CSV file is empty")

	// ErrInvalidEncoding is returned when the file is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid file encoding")

	// ErrMissingHeader is returned when the CSV file has no header row
	ErrMissingHeader = errors.New("CSV file missing header row")

	// ErrNoDataRows is returned when the CSV file has no data rows
	ErrNoDataRows = errors.New("CSV file contains no data rows")

	// ErrFileTooLarge is returned when the file exceeds maximum size
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
)

// RowError reports a validation failure in a specific data row. One
// RowError rejects the whole batch.
type RowError struct {
	Row     int    `json:"row"`
	Column  string `json:"column"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e RowError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("row %d, column '%s': %s", e.Row, e.Column, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.Row, e.Message)
}

// NewRowError creates a new RowError
func NewRowError(row int, column, code, message string) RowError {
	return RowError{
		Row:     row,
		Column:  column,
		Code:    code,
		Message: message,
	}
}
