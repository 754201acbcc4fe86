package trk

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned by the primitive constructors when the
// requested section cannot exist (degenerate length or heading change).
var ErrInvalidGeometry = errors.New("trk: invalid geometry")

// FormatError reports a structurally malformed buffer: the file is shorter
// than its header declares, carries trailing bytes, or is not a whole
// number of 32-bit words. Decode aborts entirely; no partial model is
// returned.
type FormatError struct {
	Offset int // byte offset at which the problem was detected
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("trk: malformed file at byte %d: %s", e.Offset, e.Reason)
}

// ValidationError reports well-formed but semantically invalid data, such
// as a byte-length field that is not a multiple of its record size or a
// count that runs past a table end. The caller may retry with corrected
// input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("trk: invalid %s: %s", e.Field, e.Reason)
}

func formatErr(offset int, format string, args ...any) error {
	return &FormatError{Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

func validationErr(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
