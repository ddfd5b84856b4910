package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingSeparator is returned for lines without the ": " separator.
	ErrMissingSeparator = errors.New(`missing ": " separator`)

	// ErrOperandCount is returned when an operation is not exactly `lhs op rhs`.
	ErrOperandCount = errors.New("expected exactly `lhs op rhs`")

	// ErrUnknownOperator is returned for operator symbols with no registered implementation.
	ErrUnknownOperator = errors.New("unknown operator")

	// ErrLiteralOverflow is returned for numeric literals that do not fit the configured width.
	ErrLiteralOverflow = errors.New("literal overflows width")
)

// LineError reports which input line failed to parse.
type LineError struct {
	Line int    // 1-based line number
	Text string // the offending line
	Err  error  // underlying error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying error.
func (e *LineError) Unwrap() error {
	return e.Err
}
