package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/anatolykoptev/go_jsobj/internal/jsobj"
)

// ErrBadPattern is returned for anchors that do not compile or are too long.
var ErrBadPattern = errors.New("invalid anchor pattern")

// ExtractOptions selects how Extract searches the text.
type ExtractOptions struct {
	All         bool // every occurrence instead of the first
	ScriptsOnly bool // search inline <script> bodies only; offsets then refer to the joined script text
	Limit       int  // max values when All is set, 0 = no limit
}

// Extraction is the outcome of one Extract call.
type Extraction struct {
	Anchor  string
	Matches []jsobj.Match
	Dropped int // anchor occurrences that were not followed by a literal
}

// CompileAnchor compiles a caller-supplied anchor pattern.
func CompileAnchor(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty", ErrBadPattern)
	}
	if cfg.MaxPatternLen > 0 && len(pattern) > cfg.MaxPatternLen {
		return nil, fmt.Errorf("%w: longer than %d bytes", ErrBadPattern, cfg.MaxPatternLen)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPattern, err)
	}
	return re, nil
}

// Extract finds the literal(s) that follow pattern in text.
func Extract(text, pattern string, opts ExtractOptions) (Extraction, error) {
	anchor, err := CompileAnchor(pattern)
	if err != nil {
		return Extraction{}, err
	}
	return ExtractWith(text, anchor, opts)
}

// ExtractWith is Extract for an already compiled anchor.
func ExtractWith(text string, anchor *regexp.Regexp, opts ExtractOptions) (Extraction, error) {
	if opts.ScriptsOnly {
		text = scriptText(text)
	}
	if cfg.MaxBodyBytes > 0 && int64(len(text)) > cfg.MaxBodyBytes {
		text = text[:cfg.MaxBodyBytes]
	}

	metrics.Extractions.Add(1)
	out := Extraction{Anchor: anchor.String()}
	err := TrackOperation("extract", time.Second, func() error {
		if !opts.All {
			m, err := jsobj.Locate(text, anchor)
			if err != nil {
				return err
			}
			out.Matches = []jsobj.Match{m}
			return nil
		}
		var err error
		out.Matches, err = jsobj.LocateAll(text, anchor,
			jsobj.WithLimit(opts.Limit),
			jsobj.WithObserver(func(d jsobj.Diagnostic) {
				out.Dropped++
				slog.Debug("extract: candidate skipped",
					slog.String("anchor", out.Anchor),
					slog.Int("offset", d.Offset),
					slog.Any("error", d.Err),
				)
			}),
		)
		return err
	})
	metrics.DroppedCandidates.Add(int64(out.Dropped))
	if err != nil {
		metrics.ExtractionErrors.Add(1)
		return out, err
	}
	for _, m := range out.Matches {
		if m.Lenient {
			metrics.LiteralFallbacks.Add(1)
		}
	}
	return out, nil
}

// Values returns the parsed values of all matches.
func (e Extraction) Values() []jsobj.Value {
	values := make([]jsobj.Value, len(e.Matches))
	for i, m := range e.Matches {
		values[i] = m.Value
	}
	return values
}

// SplitArray splits a JS array literal into element texts.
func SplitArray(js string) ([]string, error) {
	metrics.ArraySplits.Add(1)
	elems, err := jsobj.SplitArray(js)
	if err != nil {
		slog.Debug("split array failed", slog.String("input", Preview(js, 80)), slog.Any("error", err))
		return nil, err
	}
	return elems, nil
}
