package jsobj

import (
	"regexp"
	"strings"
)

var funcHeadRe = regexp.MustCompile(`^function\([^)]*\)`)

// SplitArray splits a JS array literal into its top-level element texts.
// Elements written as anonymous functions are kept whole, body included;
// the body opens with { or [ right after the parameter list.
// Every other element ends at the next comma, so nested array or object
// elements that contain commas are split apart; the arrays this is used on
// hold only primitives and function literals.
func SplitArray(js string) ([]string, error) {
	if !strings.HasPrefix(js, "[") {
		return nil, newError("split", js, 0, ErrInvalidStart)
	}

	elems := []string{}
	rest := js[1:]
	offset := 1
	if rest == "]" {
		return elems, nil
	}

	for len(rest) > 0 {
		if head := funcHeadRe.FindString(rest); head != "" {
			bodyEnd, err := scanEnd(rest, len(head))
			if err != nil {
				if e, ok := err.(*Error); ok {
					e.Op = "split"
					e.Offset += offset
				}
				return nil, err
			}
			if bodyEnd == len(rest) {
				return nil, newError("split", js, offset+bodyEnd, ErrUnterminatedSpan)
			}
			elems = append(elems, rest[:bodyEnd])
			// skip the separator that follows the body
			n := bodyEnd + 1
			rest = rest[n:]
			offset += n
			continue
		}

		i := strings.IndexByte(rest, ',')
		if i < 0 {
			if !strings.HasSuffix(rest, "]") {
				return nil, newError("split", js, offset, ErrUnterminatedSpan)
			}
			elems = append(elems, rest[:len(rest)-1])
			break
		}
		elems = append(elems, rest[:i])
		rest = rest[i+1:]
		offset += i + 1
	}
	return elems, nil
}
