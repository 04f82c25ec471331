package jsobj

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// maxDepth bounds literal nesting so hostile input cannot exhaust the stack.
const maxDepth = 5000

// SyntaxError reports where the object-literal reader gave up.
type SyntaxError struct {
	Offset int
	Msg    string
}

// Error returns the message alone; the offset is reported by the *Error
// that wraps it.
func (e *SyntaxError) Error() string {
	return e.Msg
}

// literalReader is a recursive-descent reader for JSON extended with the
// object-literal forms found in inline scripts: identifier and numeric keys,
// single quoted strings, JS string escapes, trailing commas and any letter
// case of true/false/null. It accepts data only; identifiers anywhere but
// key position are rejected.
type literalReader struct {
	src   string
	pos   int
	depth int
}

func parseLiteral(src string) (Value, error) {
	r := &literalReader{src: src}
	r.skipSpace()
	v, err := r.value()
	if err != nil {
		return Value{}, err
	}
	r.skipSpace()
	if r.pos < len(r.src) {
		return Value{}, r.errorf("unexpected %q after value", r.src[r.pos])
	}
	return v, nil
}

func (r *literalReader) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: r.pos, Msg: fmt.Sprintf(format, args...)}
}

func (r *literalReader) skipSpace() {
	for r.pos < len(r.src) {
		switch r.src[r.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			r.pos++
		default:
			return
		}
	}
}

func (r *literalReader) value() (Value, error) {
	if r.pos >= len(r.src) {
		return Value{}, r.errorf("unexpected end of input")
	}
	switch c := r.src[r.pos]; {
	case c == '{':
		return r.object()
	case c == '[':
		return r.array()
	case c == '"' || c == '\'':
		s, err := r.str()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case c == '-' || isDigit(c):
		lit, err := r.number()
		if err != nil {
			return Value{}, err
		}
		return Number(lit), nil
	case isIdentStart(c):
		start := r.pos
		word := r.ident()
		switch strings.ToLower(word) {
		case "true":
			return Bool(true), nil
		case "false":
			return Bool(false), nil
		case "null":
			return Null(), nil
		}
		r.pos = start
		return Value{}, r.errorf("identifier %q is not a literal", word)
	default:
		return Value{}, r.errorf("unexpected %q", c)
	}
}

func (r *literalReader) enter() error {
	r.depth++
	if r.depth > maxDepth {
		return r.errorf("nesting deeper than %d", maxDepth)
	}
	return nil
}

func (r *literalReader) object() (Value, error) {
	if err := r.enter(); err != nil {
		return Value{}, err
	}
	defer func() { r.depth-- }()

	r.pos++ // {
	fields := map[string]Value{}
	for {
		r.skipSpace()
		if r.pos >= len(r.src) {
			return Value{}, r.errorf("unterminated object")
		}
		if r.src[r.pos] == '}' {
			r.pos++
			return Object(fields), nil
		}

		key, err := r.key()
		if err != nil {
			return Value{}, err
		}
		r.skipSpace()
		if r.pos >= len(r.src) || r.src[r.pos] != ':' {
			return Value{}, r.errorf("expected ':' after key %q", key)
		}
		r.pos++
		r.skipSpace()
		v, err := r.value()
		if err != nil {
			return Value{}, err
		}
		fields[key] = v

		r.skipSpace()
		if r.pos >= len(r.src) {
			return Value{}, r.errorf("unterminated object")
		}
		switch r.src[r.pos] {
		case ',':
			r.pos++
		case '}':
			r.pos++
			return Object(fields), nil
		default:
			return Value{}, r.errorf("expected ',' or '}' in object, got %q", r.src[r.pos])
		}
	}
}

func (r *literalReader) key() (string, error) {
	c := r.src[r.pos]
	switch {
	case c == '"' || c == '\'':
		return r.str()
	case isIdentStart(c):
		return r.ident(), nil
	case isDigit(c):
		return r.number()
	}
	return "", r.errorf("unexpected %q where a key was expected", c)
}

func (r *literalReader) array() (Value, error) {
	if err := r.enter(); err != nil {
		return Value{}, err
	}
	defer func() { r.depth-- }()

	r.pos++ // [
	items := []Value{}
	for {
		r.skipSpace()
		if r.pos >= len(r.src) {
			return Value{}, r.errorf("unterminated array")
		}
		if r.src[r.pos] == ']' {
			r.pos++
			return Array(items...), nil
		}

		v, err := r.value()
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)

		r.skipSpace()
		if r.pos >= len(r.src) {
			return Value{}, r.errorf("unterminated array")
		}
		switch r.src[r.pos] {
		case ',':
			r.pos++
		case ']':
			r.pos++
			return Array(items...), nil
		default:
			return Value{}, r.errorf("expected ',' or ']' in array, got %q", r.src[r.pos])
		}
	}
}

func (r *literalReader) ident() string {
	start := r.pos
	for r.pos < len(r.src) && isIdentPart(r.src[r.pos]) {
		r.pos++
	}
	return r.src[start:r.pos]
}

// number reads a JSON number and returns its literal text.
func (r *literalReader) number() (string, error) {
	start := r.pos
	if r.src[r.pos] == '-' {
		r.pos++
	}
	switch {
	case r.pos < len(r.src) && r.src[r.pos] == '0':
		r.pos++
	case r.pos < len(r.src) && isDigit(r.src[r.pos]):
		r.digits()
	default:
		return "", r.errorf("malformed number")
	}
	if r.pos < len(r.src) && r.src[r.pos] == '.' {
		r.pos++
		if r.digits() == 0 {
			return "", r.errorf("malformed number")
		}
	}
	if r.pos < len(r.src) && (r.src[r.pos] == 'e' || r.src[r.pos] == 'E') {
		r.pos++
		if r.pos < len(r.src) && (r.src[r.pos] == '+' || r.src[r.pos] == '-') {
			r.pos++
		}
		if r.digits() == 0 {
			return "", r.errorf("malformed number")
		}
	}
	return r.src[start:r.pos], nil
}

func (r *literalReader) digits() int {
	start := r.pos
	for r.pos < len(r.src) && isDigit(r.src[r.pos]) {
		r.pos++
	}
	return r.pos - start
}

// str reads a quoted string delimited by the quote at r.pos.
func (r *literalReader) str() (string, error) {
	quote := r.src[r.pos]
	r.pos++
	var b strings.Builder
	for {
		if r.pos >= len(r.src) {
			return "", r.errorf("unterminated string")
		}
		c := r.src[r.pos]
		switch {
		case c == quote:
			r.pos++
			return b.String(), nil
		case c == '\n' || c == '\r':
			return "", r.errorf("newline in string")
		case c == '\\':
			if err := r.escape(&b); err != nil {
				return "", err
			}
		default:
			b.WriteByte(c)
			r.pos++
		}
	}
}

func (r *literalReader) escape(b *strings.Builder) error {
	r.pos++ // backslash
	if r.pos >= len(r.src) {
		return r.errorf("unterminated escape")
	}
	c := r.src[r.pos]
	r.pos++
	switch c {
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '0':
		b.WriteByte(0)
	case '\n':
		// line continuation
	case '\r':
		if r.pos < len(r.src) && r.src[r.pos] == '\n' {
			r.pos++
		}
	case 'x':
		n, err := r.hex(2)
		if err != nil {
			return err
		}
		b.WriteRune(rune(n))
	case 'u':
		n, err := r.hex(4)
		if err != nil {
			return err
		}
		ru := rune(n)
		if utf16.IsSurrogate(ru) && strings.HasPrefix(r.src[r.pos:], `\u`) {
			save := r.pos
			r.pos += 2
			lo, err := r.hex(4)
			if err == nil {
				if dec := utf16.DecodeRune(ru, rune(lo)); dec != utf8.RuneError {
					b.WriteRune(dec)
					return nil
				}
			}
			r.pos = save
		}
		b.WriteRune(ru)
	default:
		b.WriteByte(c)
	}
	return nil
}

func (r *literalReader) hex(n int) (uint64, error) {
	if r.pos+n > len(r.src) {
		return 0, r.errorf("short hex escape")
	}
	v, err := strconv.ParseUint(r.src[r.pos:r.pos+n], 16, 32)
	if err != nil {
		return 0, r.errorf("bad hex escape %q", r.src[r.pos:r.pos+n])
	}
	r.pos += n
	return v, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }
