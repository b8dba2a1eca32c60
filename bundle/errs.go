package bundle

import (
	"errors"
	"fmt"
)

var (
	ErrNoModules   = errors.New("no module registrations")
	ErrUnbalanced  = errors.New("unbalanced delimiters")
	ErrBadMetadata = errors.New("malformed module metadata")
	ErrDuplicateID = errors.New("duplicate module id")
	ErrTooLarge    = errors.New("bundle too large")
)

// ParseError wraps a parse failure with its position in the source.
type ParseError struct {
	Err error
	Pos Pos
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func newParseErr(err error, pos *Pos) *ParseError {
	return &ParseError{Err: err, Pos: *pos}
}

func expectedErr(what string, pos *Pos) error {
	return newParseErr(fmt.Errorf("%w: expected %s", ErrBadMetadata, what), pos)
}
