// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jconf_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/creachadair/jconf"
	"github.com/creachadair/jconf/internal/testutil"
	"github.com/google/go-cmp/cmp"
)

func scanAll(t *testing.T, s *jconf.Scanner) []jconf.Token {
	t.Helper()
	var got []jconf.Token
	for s.Next() == nil {
		got = append(got, s.Token())
	}
	if err := s.Err(); err != io.EOF {
		t.Errorf("Next failed: %v", err)
	} else if s.Token() != jconf.EOF {
		t.Errorf("Final token: got %v, want %v", s.Token(), jconf.EOF)
	}
	return got
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []jconf.Token
	}{
		// Empty inputs
		{"", nil},
		{"  ", nil},
		{"\n\n  \n", nil},
		{"\t  \r\n \t \v\f \r\n", nil},

		// Constants
		{"true false null ", []jconf.Token{jconf.True, jconf.False, jconf.Null}},

		// Punctuation
		{"{ [ ] } , : =", []jconf.Token{
			jconf.LBrace, jconf.LSquare, jconf.RSquare, jconf.RBrace,
			jconf.Comma, jconf.Separator, jconf.Separator,
		}},

		// Strings
		{`"" "a b c" "a\"b" "x\\"`, []jconf.Token{jconf.String, jconf.String, jconf.String, jconf.String}},

		// Numbers
		{`0 -1 5139 2.3 5e+9 3.6E+4 -0.001E-100 +7 -1.5`, []jconf.Token{
			jconf.Number, jconf.Number, jconf.Number, jconf.Number, jconf.Number,
			jconf.Number, jconf.Number, jconf.Number, jconf.Number,
		}},

		// Identifiers, including numbers that are not
		{"abc /path x-y truely nul 1abc 1.2.3 tru ", []jconf.Token{
			jconf.Identifier, jconf.Identifier, jconf.Identifier, jconf.Identifier,
			jconf.Identifier, jconf.Identifier, jconf.Identifier, jconf.Identifier,
		}},

		// Comments
		{"-- one\n// two\n1 -- three", []jconf.Token{jconf.Number}},
		{"//\n--", nil},

		// Mixed types
		{`{"a": true, "b":[null, 1, 0.5]}`, []jconf.Token{
			jconf.LBrace,
			jconf.String, jconf.Separator, jconf.True, jconf.Comma,
			jconf.String, jconf.Separator,
			jconf.LSquare,
			jconf.Null, jconf.Comma, jconf.Number, jconf.Comma, jconf.Number,
			jconf.RSquare,
			jconf.RBrace,
		}},
		{"x = 1\ny: \"hi\"", []jconf.Token{
			jconf.Identifier, jconf.Separator, jconf.Number,
			jconf.Identifier, jconf.Separator, jconf.String,
		}},
		{"a=b,c:d{e}[f]\n", []jconf.Token{
			jconf.Identifier, jconf.Separator, jconf.Identifier, jconf.Comma,
			jconf.Identifier, jconf.Separator, jconf.Identifier,
			jconf.LBrace, jconf.Identifier, jconf.RBrace,
			jconf.LSquare, jconf.Identifier, jconf.RSquare,
		}},
	}

	for _, test := range tests {
		s := jconf.NewScanner(strings.NewReader(test.input))
		got := scanAll(t, s)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_strict(t *testing.T) {
	tests := []struct {
		input string
		want  []jconf.Token
	}{
		{"a=b ", []jconf.Token{jconf.Identifier}},
		{"1=2 ", []jconf.Token{jconf.Identifier}},
		{"= : ", []jconf.Token{jconf.Identifier, jconf.Separator}},
		{`"a":1`, []jconf.Token{jconf.String, jconf.Separator, jconf.Number}},
	}
	for _, test := range tests {
		s := jconf.NewScanner(strings.NewReader(test.input))
		s.SetDialect(jconf.Strict)
		got := scanAll(t, s)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", test.input, diff)
		}
	}
}

type tokText struct {
	Tok  jconf.Token
	Text string
}

func scanText(t *testing.T, s *jconf.Scanner) []tokText {
	t.Helper()
	var got []tokText
	for s.Next() == nil {
		got = append(got, tokText{s.Token(), string(s.Text())})
	}
	if err := s.Err(); err != io.EOF {
		t.Errorf("Next failed: %v", err)
	}
	return got
}

const chunkInput = `{"alpha": "a rather long string value", -- note
"beta": -12.5e3, "gamma": [true, false, null], "delta": ""}`

var chunkWant = []tokText{
	{jconf.LBrace, "{"},
	{jconf.String, "alpha"}, {jconf.Separator, ":"}, {jconf.String, "a rather long string value"},
	{jconf.Comma, ","},
	{jconf.String, "beta"}, {jconf.Separator, ":"}, {jconf.Number, "-12.5e3"},
	{jconf.Comma, ","},
	{jconf.String, "gamma"}, {jconf.Separator, ":"},
	{jconf.LSquare, "["},
	{jconf.True, "true"}, {jconf.Comma, ","}, {jconf.False, "false"}, {jconf.Comma, ","}, {jconf.Null, "null"},
	{jconf.RSquare, "]"},
	{jconf.Comma, ","},
	{jconf.String, "delta"}, {jconf.Separator, ":"}, {jconf.String, ""},
	{jconf.RBrace, "}"},
}

func TestScannerText(t *testing.T) {
	for _, size := range testutil.ChunkSizes {
		for _, src := range testutil.Sources() {
			s := jconf.NewScannerSize(src.Open(chunkInput), size)
			got := scanText(t, s)
			if diff := cmp.Diff(chunkWant, got); diff != "" {
				t.Errorf("Chunk size %d, source %s: (-want, +got)\n%s", size, src.Name, diff)
			}
		}
	}
}

func TestScannerFloat64(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"0", 0},
		{"15", 15},
		{"-1.5", -1.5},
		{"+1.5", 1.5},
		{"3.25e-5", 3.25e-5},
		{"1E3", 1000},
		{"-0.001E-100", -0.001e-100},
		{"1.7976931348623157e308", 1.7976931348623157e308},
	}
	for _, test := range tests {
		for _, size := range testutil.ChunkSizes {
			s := jconf.NewScannerSize(strings.NewReader(test.input), size)
			if err := s.Next(); err != nil {
				t.Fatalf("Next %q: %v", test.input, err)
			} else if s.Token() != jconf.Number {
				t.Fatalf("Next %q: got %v, want %v", test.input, s.Token(), jconf.Number)
			}
			got, err := s.Float64()
			if err != nil {
				t.Errorf("Float64 %q: unexpected error: %v", test.input, err)
			} else if got != test.want {
				t.Errorf("Float64 %q: got %v, want %v", test.input, got, test.want)
			}
		}
	}
}

func TestScannerLoc(t *testing.T) {
	type tokPos struct {
		Tok jconf.Token
		Pos string
	}
	tests := []struct {
		input string
		want  []tokPos
	}{
		{"", nil},
		{"{ }", []tokPos{{jconf.LBrace, "1:0-1"}, {jconf.RBrace, "1:2-3"}}},
		{"\"foo\" -- bar\n true\n", []tokPos{{jconf.String, "1:0-5"}, {jconf.True, "2:1-5"}}},
		{"\"a\nb\" x ", []tokPos{{jconf.String, "1:0-2:2"}, {jconf.Identifier, "2:3-4"}}},
		{"// first\n[1, 22\n]", []tokPos{
			{jconf.LSquare, "2:0-1"}, {jconf.Number, "2:1-2"},
			{jconf.Comma, "2:2-3"}, {jconf.Number, "2:4-6"}, {jconf.RSquare, "3:0-1"},
		}},
	}
	for _, tc := range tests {
		var got []tokPos
		s := jconf.NewScanner(strings.NewReader(tc.input))
		for s.Next() == nil {
			got = append(got, tokPos{s.Token(), s.Location().String()})
		}
		if err := s.Err(); err != io.EOF {
			t.Errorf("Next failed: %v", err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Input: %#q\nTokens: (-want, +got)\n%s", tc.input, diff)
		}
	}
}

func TestScannerSpan(t *testing.T) {
	s := jconf.NewScannerSize(strings.NewReader(`  "abc" 12`), 2)
	var got []jconf.Span
	for s.Next() == nil {
		got = append(got, s.Span())
	}
	want := []jconf.Span{{Pos: 2, End: 7}, {Pos: 8, End: 10}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Spans: (-want, +got)\n%s", diff)
	}
}

func TestScannerErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`"abc`, "at 1:4: unexpected end of input in string"},
		{`"`, "at 1:1: unexpected end of input in string"},
		{`abc`, "at 1:3: unexpected end of input in identifier"},
		{`true`, "at 1:4: unexpected end of input in identifier"},
		{`12x`, "at 1:3: unexpected end of input in identifier"},
		{`-`, "at 1:1: unexpected end of input in token"},
		{"\n/", "at 2:1: unexpected end of input in token"},
	}
	for _, test := range tests {
		for _, size := range testutil.ChunkSizes {
			s := jconf.NewScannerSize(strings.NewReader(test.input), size)
			var err error
			for err == nil {
				err = s.Next()
			}
			if err == io.EOF {
				t.Errorf("Input %#q: got EOF, want error", test.input)
				continue
			}
			if !errors.Is(err, jconf.ErrUnexpectedEOF) {
				t.Errorf("Input %#q: got %v, want %v", test.input, err, jconf.ErrUnexpectedEOF)
			}
			var serr *jconf.SyntaxError
			if !errors.As(err, &serr) {
				t.Errorf("Input %#q: got %T, want *SyntaxError", test.input, err)
			}
			if got := err.Error(); got != test.want {
				t.Errorf("Input %#q: error got %q, want %q", test.input, got, test.want)
			}
		}
	}
}

func TestScannerReadError(t *testing.T) {
	errBoom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("[1, "), iotest.ErrReader(errBoom))
	s := jconf.NewScanner(r)

	var got []jconf.Token
	var err error
	for {
		if err = s.Next(); err != nil {
			break
		}
		got = append(got, s.Token())
	}
	if diff := cmp.Diff([]jconf.Token{jconf.LSquare, jconf.Number, jconf.Comma}, got); diff != "" {
		t.Errorf("Tokens: (-want, +got)\n%s", diff)
	}
	if !errors.Is(err, errBoom) {
		t.Errorf("Next: got %v, want %v", err, errBoom)
	}
	t.Logf("Got expected error: %v", err)
}

func TestDialectString(t *testing.T) {
	tests := []struct {
		d    jconf.Dialect
		want string
	}{
		{jconf.Auto, "auto"},
		{jconf.Strict, "strict"},
		{jconf.Simplified, "simplified"},
		{jconf.Dialect(9), "Dialect(9)"},
	}
	for _, test := range tests {
		if got := test.d.String(); got != test.want {
			t.Errorf("String(%d): got %q, want %q", test.d, got, test.want)
		}
	}
}
