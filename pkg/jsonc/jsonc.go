// Package jsonc decodes JSON documents that carry // line comments and /* */ block
// comments, the format used by editor keymap and settings files.
package jsonc

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// commentPattern matches one comment together with the horizontal whitespace in front
// of it. Block comments may span lines and also swallow trailing horizontal whitespace.
// Newlines are never consumed, so line structure survives stripping.
//
// The pattern is not aware of string literals: a "//" inside a quoted value is
// treated as a comment.
var commentPattern = regexp.MustCompile(`(?ms)(^)?[^\S\n]*/(?:\*(.*?)\*/[^\S\n]*|/[^\n]*)($)?`)

// ParseError is returned when the text left after stripping comments is not valid JSON.
type ParseError struct {
	// Offset is the byte offset into the stripped text where decoding failed,
	// or -1 when the decoder did not report one.
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("invalid JSON at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Strip removes every comment from text. Each pass removes the first match and
// rescans from the beginning, so comments that only form once another one has been
// removed are stripped as well.
func Strip(text string) string {
	for {
		loc := commentPattern.FindStringIndex(text)
		if loc == nil {
			return text
		}
		text = text[:loc[0]] + text[loc[1]:]
	}
}

// Parse strips comments from text and decodes the remainder with the standard JSON
// rules. Objects decode to map[string]any, arrays to []any and numbers to float64.
func Parse(text string) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(Strip(text)), &v); err != nil {
		return nil, newParseError(err)
	}
	return v, nil
}

// ParseInto strips comments from text and decodes the remainder into v.
func ParseInto(text string, v any) error {
	if err := json.Unmarshal([]byte(Strip(text)), v); err != nil {
		return newParseError(err)
	}
	return nil
}

func newParseError(err error) *ParseError {
	offset := int64(-1)
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	}
	return &ParseError{Offset: offset, Err: err}
}
