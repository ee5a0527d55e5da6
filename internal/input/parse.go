// Package input turns caller text into working arrays and generates
// arrays for demos and self tests.
package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed is returned for text that is not a comma separated list of
// integers, optionally wrapped in a single pair of brackets.
var ErrMalformed = errors.New("malformed array")

// Parse accepts "[5,1,4,2,8]" or "5,1,4,2,8", with whitespace around
// tokens, and returns the integers in order. "[]" is the empty array; empty
// text is malformed.
func Parse(text string) ([]int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	opened, closed := strings.HasPrefix(s, "["), strings.HasSuffix(s, "]")
	if opened != closed {
		return nil, fmt.Errorf("%w: unbalanced brackets", ErrMalformed)
	}
	if opened {
		s = strings.TrimSpace(s[1 : len(s)-1])
		if s == "" {
			return []int{}, nil
		}
	}

	tokens := strings.Split(s, ",")
	out := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("%w: empty element at position %d", ErrMalformed, i)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: element %d %q is not an integer", ErrMalformed, i, tok)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParseJSON decodes an HTTP request body. A JSON array of integers is
// decoded directly; anything else goes through Parse. A null element is
// malformed rather than zero.
func ParseJSON(body []byte) ([]int, error) {
	trimmed := bytes.TrimSpace(body)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var elems []*int
		if err := json.Unmarshal(trimmed, &elems); err == nil {
			out := make([]int, len(elems))
			for i, v := range elems {
				if v == nil {
					return nil, fmt.Errorf("%w: element %d is null", ErrMalformed, i)
				}
				out[i] = *v
			}
			return out, nil
		}
	}
	return Parse(string(trimmed))
}

// Format renders a as "[a0, a1, ...]", the inverse of Parse.
func Format(a []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}
