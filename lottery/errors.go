package lottery

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset is returned by ingestion when an uploaded file has no
	// usable rows. Nothing is replaced in that case.
	ErrEmptyDataset = errors.New("no valid data found in file")

	// ErrSorteoNotFound is returned when an update or delete targets a
	// sorteo id that does not exist.
	ErrSorteoNotFound = errors.New("sorteo not found")

	// ErrUserExists is returned on registration with a taken username.
	ErrUserExists = errors.New("user already exists")
)

// ValidationError reports a draw that violates the domain ranges or shape.
// Position is the zero-based index of the offending number, or -1 when the
// draw has the wrong length (Value then holds the actual length).
type ValidationError struct {
	Position int
	Value    int
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Position < 0 {
		return fmt.Sprintf("invalid draw: %s (got %d)", e.Reason, e.Value)
	}
	return fmt.Sprintf("invalid draw: %s (position %d, value %d)", e.Reason, e.Position+1, e.Value)
}

// FormatError reports an ingestion row that could not be parsed into a draw.
// Row is the 1-based data row number within the uploaded sheet.
type FormatError struct {
	Row   int
	Cause error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Cause)
}

func (e *FormatError) Unwrap() error { return e.Cause }
