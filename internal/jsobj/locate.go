package jsobj

import (
	"errors"
	"regexp"
)

// Match is one literal found after an anchor.
type Match struct {
	AnchorStart int    // offset where the anchor match begins
	Start       int    // offset of the opening bracket (the anchor match end)
	End         int    // offset one past the closing bracket
	Span        string // text[Start:End]
	Value       Value
	Lenient     bool // the span was not strict JSON
}

// Diagnostic describes an anchor occurrence that FindAll skipped.
type Diagnostic struct {
	Offset int // where scanning was attempted
	Err    error
}

// Option configures FindAll and LocateAll.
type Option func(*options)

type options struct {
	observe func(Diagnostic)
	limit   int
}

// WithObserver registers fn to receive every skipped occurrence.
func WithObserver(fn func(Diagnostic)) Option {
	return func(o *options) { o.observe = fn }
}

// WithLimit stops after n values have been collected. n <= 0 means no limit.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

// FindOne parses the literal that follows the first match of anchor.
func FindOne(text string, anchor *regexp.Regexp) (Value, error) {
	m, err := Locate(text, anchor)
	if err != nil {
		return Value{}, err
	}
	return m.Value, nil
}

// Locate is FindOne with position information.
func Locate(text string, anchor *regexp.Regexp) (Match, error) {
	loc := anchor.FindStringIndex(text)
	if loc == nil {
		return Match{}, &Error{Op: "find", Offset: -1, Pattern: anchor.String(), Err: ErrNoAnchorMatch}
	}
	m, err := matchAt(text, loc)
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Pattern = anchor.String()
		}
		return Match{}, err
	}
	return m, nil
}

// FindAll parses the literal after every match of anchor, in text order.
// Occurrences that fail to scan or parse are skipped; an anchor can appear
// in places that are not followed by a literal at all.
func FindAll(text string, anchor *regexp.Regexp, opts ...Option) ([]Value, error) {
	matches, err := LocateAll(text, anchor, opts...)
	if err != nil {
		return nil, err
	}
	values := make([]Value, len(matches))
	for i, m := range matches {
		values[i] = m.Value
	}
	return values, nil
}

// LocateAll is FindAll with position information.
func LocateAll(text string, anchor *regexp.Regexp, opts ...Option) ([]Match, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	locs := anchor.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return nil, &Error{Op: "find", Offset: -1, Pattern: anchor.String(), Err: ErrNoAnchorMatch}
	}

	var matches []Match
	for _, loc := range locs {
		m, err := matchAt(text, loc)
		if err != nil {
			if o.observe != nil {
				o.observe(Diagnostic{Offset: loc[1], Err: err})
			}
			continue
		}
		matches = append(matches, m)
		if o.limit > 0 && len(matches) >= o.limit {
			break
		}
	}
	if len(matches) == 0 {
		return nil, &Error{Op: "find", Offset: -1, Pattern: anchor.String(), Err: ErrNoValidObjects}
	}
	return matches, nil
}

// FindFirst tries each anchor in order and returns the first value found.
// When none succeed it returns the first failure of an anchor that matched,
// or ErrNoAnchorMatch when no anchor matched at all.
func FindFirst(text string, anchors ...*regexp.Regexp) (Value, error) {
	var matchedErr error
	err := error(&Error{Op: "find", Offset: -1, Err: ErrNoAnchorMatch})
	for _, anchor := range anchors {
		var v Value
		if v, err = FindOne(text, anchor); err == nil {
			return v, nil
		}
		if matchedErr == nil && !errors.Is(err, ErrNoAnchorMatch) {
			matchedErr = err
		}
	}
	if matchedErr != nil {
		return Value{}, matchedErr
	}
	return Value{}, err
}

func matchAt(text string, loc []int) (Match, error) {
	start := loc[1]
	end, err := scanEnd(text, start)
	if err != nil {
		return Match{}, err
	}
	span := text[start:end]
	v, lenient, err := parse(span)
	if err != nil {
		var e *Error
		if errors.As(err, &e) && e.Offset >= 0 {
			e.Offset += start
		}
		return Match{}, err
	}
	return Match{AnchorStart: loc[0], Start: start, End: end, Span: span, Value: v, Lenient: lenient}, nil
}
