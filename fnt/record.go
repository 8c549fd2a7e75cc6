// seehuhn.de/go/fntsplit - split and recombine bitmap font atlases
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package fnt

import (
	"fmt"
	"strconv"
	"strings"
)

// A record holds the key=value pairs of a single line.
//
// The typed accessors record the first error encountered and return zero
// values once an error has been seen.  Callers read all fields they need
// and then check r.err once.
type record struct {
	line    int
	section string
	fields  map[string]value
	err     error
}

type value struct {
	text   string
	quoted bool
}

// newRecord splits the part of a line following the keyword into its
// key=value pairs.
func newRecord(line int, section, rest string) (*record, error) {
	r := &record{
		line:    line,
		section: section,
		fields:  make(map[string]value),
	}

	s := rest
	for {
		s = strings.TrimLeftFunc(s, isSpace)
		if s == "" {
			break
		}

		end := strings.IndexFunc(s, func(c rune) bool { return c == '=' || isSpace(c) })
		if end < 0 || s[end] != '=' {
			if end < 0 {
				end = len(s)
			}
			r.fail(s[:end], "missing '='")
			return nil, r.err
		}
		key := s[:end]
		if key == "" {
			r.fail("", "missing field name before '='")
			return nil, r.err
		}
		s = s[end+1:]

		var val value
		if strings.HasPrefix(s, `"`) {
			q := strings.IndexByte(s[1:], '"')
			if q < 0 {
				r.fail(key, "unterminated string")
				return nil, r.err
			}
			val = value{text: s[1 : q+1], quoted: true}
			s = s[q+2:]
			if s != "" && !isSpace(rune(s[0])) {
				r.fail(key, "unexpected text after closing quote")
				return nil, r.err
			}
		} else {
			end := strings.IndexFunc(s, isSpace)
			if end < 0 {
				end = len(s)
			}
			val = value{text: s[:end]}
			s = s[end:]
		}

		if _, seen := r.fields[key]; seen {
			r.fail(key, "duplicate field")
			return nil, r.err
		}
		r.fields[key] = val
	}

	return r, nil
}

func (r *record) fail(field, reason string) {
	if r.err != nil {
		return
	}
	r.err = &GrammarError{
		Line:    r.line,
		Section: r.section,
		Field:   field,
		Reason:  reason,
	}
}

func (r *record) get(key string) (value, bool) {
	if r.err != nil {
		return value{}, false
	}
	val, ok := r.fields[key]
	if !ok {
		r.fail(key, "missing field")
		return value{}, false
	}
	return val, true
}

// String returns the value of a quoted string field.
func (r *record) String(key string) string {
	val, ok := r.get(key)
	if !ok {
		return ""
	}
	if !val.quoted {
		r.fail(key, fmt.Sprintf("expected quoted string, found %q", val.text))
		return ""
	}
	return val.text
}

// Uint returns the value of an unsigned 32-bit integer field.
func (r *record) Uint(key string) uint32 {
	val, ok := r.get(key)
	if !ok {
		return 0
	}
	if val.quoted || !isDigits(val.text) {
		r.fail(key, fmt.Sprintf("invalid unsigned integer %q", val.text))
		return 0
	}
	x, err := strconv.ParseUint(val.text, 10, 32)
	if err != nil {
		r.fail(key, fmt.Sprintf("value %s out of range", val.text))
		return 0
	}
	return uint32(x)
}

// Positive is like Uint, but rejects the value 0.
func (r *record) Positive(key string) uint32 {
	x := r.Uint(key)
	if r.err == nil && x == 0 {
		r.fail(key, "value must be positive")
	}
	return x
}

// Int returns the value of a signed 32-bit integer field.
func (r *record) Int(key string) int32 {
	val, ok := r.get(key)
	if !ok {
		return 0
	}
	if val.quoted {
		r.fail(key, fmt.Sprintf("invalid integer %q", val.text))
		return 0
	}
	x, ok := parseInt(val.text)
	if !ok {
		r.fail(key, fmt.Sprintf("invalid integer %q", val.text))
		return 0
	}
	return x
}

// Ints returns the value of a comma-separated list of integers.
// The list must have exactly n elements.
func (r *record) Ints(key string, n int) []int32 {
	val, ok := r.get(key)
	if !ok {
		return nil
	}
	if val.quoted {
		r.fail(key, fmt.Sprintf("invalid integer list %q", val.text))
		return nil
	}

	parts := strings.Split(val.text, ",")
	res := make([]int32, len(parts))
	for i, part := range parts {
		x, ok := parseInt(part)
		if !ok {
			r.fail(key, fmt.Sprintf("invalid integer list %q", val.text))
			return nil
		}
		res[i] = x
	}
	if len(res) != n {
		r.fail(key, fmt.Sprintf("expected %d values, found %d", n, len(res)))
		return nil
	}
	return res
}

// parseInt parses an optionally negative decimal integer which fits into
// 32 bits.  Unlike strconv.ParseInt, no leading '+' is accepted.
func parseInt(s string) (int32, bool) {
	if !isDigits(strings.TrimPrefix(s, "-")) {
		return 0, false
	}
	x, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(x), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}
