package hopping

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates that the hopping file does not exist.
	// Errors carrying it also match fs.ErrNotExist.
	ErrFileNotFound = errors.New("hopping: file not found")

	// ErrParse indicates a malformed header, a non-numeric token or a
	// truncated record stream. A partial model is never returned.
	ErrParse = errors.New("hopping: parse error")

	// ErrInvalidModel indicates an inconsistent in-memory model
	// (non-positive orbital count, wrong block shape, nil block).
	ErrInvalidModel = errors.New("hopping: invalid model")
)

// ParseError describes where parsing stopped.
// It matches ErrParse via errors.Is and also unwraps the underlying cause
// (e.g. *strconv.NumError or io.ErrUnexpectedEOF).
type ParseError struct {
	Field  string // header or record field being read ("orbitals", "rx", "im", ...)
	Token  string // offending token; empty when the input ended early
	Record int    // 0-based record index, -1 for header fields
	Err    error  // underlying cause
}

func (e *ParseError) Error() string {
	var where string
	if e.Record < 0 {
		where = e.Field
	} else {
		where = fmt.Sprintf("record %d field %s", e.Record, e.Field)
	}
	if e.Token == "" {
		return fmt.Sprintf("hopping: parse %s: %v", where, e.Err)
	}

	return fmt.Sprintf("hopping: parse %s: token %q: %v", where, e.Token, e.Err)
}

// Unwrap exposes both the ErrParse sentinel and the underlying cause.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
