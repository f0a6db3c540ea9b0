package feed

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformedRecord signals a line which is not a valid record.
var ErrMalformedRecord = errors.New("feed: malformed record")

// Record is a key/value pair read from line Line of a feed.
type Record[K, V any] struct {
	Line  int
	Key   K
	Value V
}

// Parser converts the textual fields of a record.
type Parser[K, V any] struct {
	Key   func(string) (K, error)
	Value func(string) (V, error)
}

// Int64s parses decimal integer keys and values.
func Int64s() Parser[int64, int64] {
	parseInt := func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}
	return Parser[int64, int64]{Key: parseInt, Value: parseInt}
}

// StringFloats parses string keys and floating point values.
func StringFloats() Parser[string, float64] {
	return Parser[string, float64]{
		Key: func(s string) (string, error) { return s, nil },
		Value: func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		},
	}
}

// parseLine parses a single line. skip is true for blank and comment lines.
func (p Parser[K, V]) parseLine(lineno int, line string) (rec Record[K, V], skip bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return rec, true, nil
	}
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return rec, false, fmt.Errorf("%w: line %d: expected 2 fields, have %d", ErrMalformedRecord, lineno, len(fields))
	}
	rec.Line = lineno
	if rec.Key, err = p.Key(fields[0]); err != nil {
		return rec, false, fmt.Errorf("%w: line %d: key: %v", ErrMalformedRecord, lineno, err)
	}
	if rec.Value, err = p.Value(fields[1]); err != nil {
		return rec, false, fmt.Errorf("%w: line %d: value: %v", ErrMalformedRecord, lineno, err)
	}
	return rec, false, nil
}
