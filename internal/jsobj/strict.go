package jsobj

// jsonFrame is an open array or object while building a validated document.
type jsonFrame struct {
	object bool
	key    string
	items  []Value
	fields map[string]Value
}

// buildJSON turns a span already accepted by gjson.Valid into a Value. It
// keeps an explicit stack of open containers, so nesting depth costs heap
// and never call depth. Strings and numbers go through the literal reader,
// whose grammar is a superset of JSON's.
func buildJSON(span string) (Value, error) {
	r := &literalReader{src: span}
	var stack []jsonFrame
	wantKey := false
	for {
		r.skipSpace()
		if r.pos >= len(r.src) {
			return Value{}, r.errorf("unexpected end of input")
		}
		var v Value
		switch c := r.src[r.pos]; {
		case c == '{':
			r.pos++
			stack = append(stack, jsonFrame{object: true, fields: map[string]Value{}})
			wantKey = true
			continue
		case c == '[':
			r.pos++
			stack = append(stack, jsonFrame{items: []Value{}})
			continue
		case c == ',':
			r.pos++
			wantKey = len(stack) > 0 && stack[len(stack)-1].object
			continue
		case c == ':':
			r.pos++
			continue
		case c == '}' || c == ']':
			if len(stack) == 0 {
				return Value{}, r.errorf("unexpected %q", c)
			}
			r.pos++
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			wantKey = false
			if top.object {
				v = Object(top.fields)
			} else {
				v = Array(top.items...)
			}
		case c == '"':
			s, err := r.str()
			if err != nil {
				return Value{}, err
			}
			if wantKey && len(stack) > 0 {
				stack[len(stack)-1].key = s
				wantKey = false
				continue
			}
			v = String(s)
		case c == '-' || isDigit(c):
			lit, err := r.number()
			if err != nil {
				return Value{}, err
			}
			v = Number(lit)
		default:
			switch word := r.ident(); word {
			case "true":
				v = Bool(true)
			case "false":
				v = Bool(false)
			case "null":
				v = Null()
			default:
				return Value{}, r.errorf("unexpected %q", c)
			}
		}

		if len(stack) == 0 {
			r.skipSpace()
			if r.pos < len(r.src) {
				return Value{}, r.errorf("unexpected %q after value", r.src[r.pos])
			}
			return v, nil
		}
		top := &stack[len(stack)-1]
		if top.object {
			top.fields[top.key] = v
		} else {
			top.items = append(top.items, v)
		}
	}
}
