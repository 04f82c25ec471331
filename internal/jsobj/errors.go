package jsobj

import (
	"errors"
	"fmt"

	"github.com/anatolykoptev/go-kit/strutil"
)

// Failure kinds. Every error returned by this package unwraps to one of these.
var (
	ErrInvalidStart     = errors.New("start is not an object or array opener")
	ErrUnterminatedSpan = errors.New("input ended inside an open context")
	ErrParseFailure     = errors.New("span is neither JSON nor an object literal")
	ErrNoAnchorMatch    = errors.New("anchor pattern not found")
	ErrNoValidObjects   = errors.New("no anchor occurrence yielded a value")
)

const previewLen = 20

// Error carries the operation and position of a failure.
type Error struct {
	Op      string // scan, parse, find, split
	Offset  int    // byte offset into the input, -1 when not applicable
	Pattern string // anchor pattern, if any
	Near    string // short preview of the input at Offset
	Err     error
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.Err.Error()
	if e.Pattern != "" {
		msg += fmt.Sprintf(" (pattern %q)", e.Pattern)
	}
	if e.Offset >= 0 {
		msg += fmt.Sprintf(" at offset %d", e.Offset)
	}
	if e.Near != "" {
		msg += fmt.Sprintf(" near %q", e.Near)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op string, text string, offset int, err error) *Error {
	e := &Error{Op: op, Offset: offset, Err: err}
	if offset >= 0 && offset < len(text) {
		e.Near = strutil.TruncateWith(text[offset:], previewLen, "...")
	}
	return e
}
