package table

import "errors"

// Errors returned when building a table. They are wrapped with detail, so
// test for them with errors.Is.
var (
	// ErrInvalidArgument indicates a malformed column header list.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSchemaMismatch indicates a row whose field count differs from the
	// table's column count.
	ErrSchemaMismatch = errors.New("schema mismatch")

	// ErrDuplicateKey indicates a row whose primary key was already added.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrOverflowField indicates a field or header too long to fit any
	// column width.
	ErrOverflowField = errors.New("field overflows column")
)
