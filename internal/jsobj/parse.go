package jsobj

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var errNotJSON = errors.New("not valid JSON")

// Parse converts a scanned span into a Value. Strict JSON is tried first;
// on failure the span is read as an object literal (unquoted keys, single
// quoted strings, trailing commas). Nothing in the span is ever executed.
func Parse(span string) (Value, error) {
	v, _, err := parse(span)
	return v, err
}

// parse reports whether the object-literal reader was needed.
func parse(span string) (Value, bool, error) {
	if v, err := parseStrict(span); err == nil {
		return v, false, nil
	}
	v, err := parseLiteral(span)
	if err != nil {
		var se *SyntaxError
		offset := -1
		if errors.As(err, &se) {
			offset = se.Offset
		}
		return Value{}, true, newError("parse", span, offset, fmt.Errorf("%w: %w", ErrParseFailure, err))
	}
	return v, true, nil
}

// parseStrict validates the span with gjson and then builds the tree in one
// more pass. Both passes are linear in the span length.
func parseStrict(span string) (Value, error) {
	if !gjson.Valid(span) {
		return Value{}, errNotJSON
	}
	return buildJSON(span)
}
