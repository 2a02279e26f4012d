// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jconf

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedEOF is reported when the input ends inside a token or
	// before the grammar is satisfied.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrUnexpectedToken is reported when a token appears where the grammar
	// does not permit it.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrMalformedNumber is reported when a number token cannot be converted
	// to a 64-bit floating-point value.
	ErrMalformedNumber = errors.New("malformed number")
)

// A Span is the range of byte offsets [Pos, End) covered by a token.
type Span struct {
	Pos, End int
}

// A LineCol is a position in source text. Lines count from 1, columns from 0.
// Control characters other than newline do not advance the column.
type LineCol struct {
	Line, Column int
}

func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line, lc.Column) }

// A Location is a Span together with the positions of its first and last
// bytes. Last is the position just after the token.
type Location struct {
	Span
	First, Last LineCol
}

// String renders loc as "line:col-col" when it lies on one line, and as
// "line:col-line:col" otherwise.
func (loc Location) String() string {
	if loc.First.Line != loc.Last.Line {
		return fmt.Sprintf("%v-%v", loc.First, loc.Last)
	}
	return fmt.Sprintf("%v-%d", loc.First, loc.Last.Column)
}

// SyntaxError is the concrete type of errors reported by the scanner and the
// parser. Use errors.Is to check for the error classes defined by this
// package, or for an I/O error reported by the input.
type SyntaxError struct {
	Location LineCol
	Message  string

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }
