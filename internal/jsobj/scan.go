// Package jsobj pulls object and array literals out of script text without
// evaluating it. A single context stack tracks objects, arrays, strings and
// regex literals so that delimiters inside strings or regexes never end a span.
package jsobj

// closers maps each context opener to the character that closes it.
var closers = [256]byte{
	'{': '}',
	'[': ']',
	'"': '"',
	'/': '/',
}

// regexPrefix holds the characters after which a slash opens a regex literal.
// After anything else the slash is treated as division.
var regexPrefix = [256]bool{
	'(': true, ',': true, '=': true, ':': true, '[': true, '!': true,
	'&': true, '|': true, '?': true, '{': true, '}': true, ';': true,
}

// Scan returns the balanced object or array literal that opens at text[start].
// Offsets are byte offsets.
func Scan(text string, start int) (string, error) {
	end, err := scanEnd(text, start)
	if err != nil {
		return "", err
	}
	return text[start:end], nil
}

// scanEnd returns the offset one past the character that closes the context
// opened at text[start].
func scanEnd(text string, start int) (int, error) {
	if start < 0 || start >= len(text) || (text[start] != '{' && text[start] != '[') {
		return 0, newError("scan", text, start, ErrInvalidStart)
	}

	stack := make([]byte, 1, 16)
	stack[0] = text[start]

	// last is the previous character that is not a space or newline; 0 means
	// no such character has been seen since the opener.
	var last, curr byte
	i := start + 1
	for i < len(text) {
		if curr != ' ' && curr != '\n' {
			last = curr
		}
		curr = text[i]
		top := stack[len(stack)-1]

		if curr == closers[top] {
			stack = stack[:len(stack)-1]
			i++
			if len(stack) == 0 {
				return i, nil
			}
			continue
		}

		if top == '"' || top == '/' {
			if curr == '\\' {
				i += 2
				continue
			}
		} else if closers[curr] != 0 {
			if curr != '/' || regexPrefix[last] {
				stack = append(stack, curr)
			}
		}
		i++
	}
	return 0, newError("scan", text, start, ErrUnterminatedSpan)
}
