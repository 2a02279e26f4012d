// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jconf

import (
	"fmt"
	"io"

	"go4.org/mem"
)

// Token is the type of a lexical token.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid    Token = iota // invalid token
	LBrace                  // left brace "{"
	RBrace                  // right brace "}"
	LSquare                 // left square bracket "["
	RSquare                 // right square bracket "]"
	Comma                   // comma ","
	Separator               // separator ":" or "="
	Identifier              // unquoted word
	Number                  // number
	String                  // quoted string
	True                    // constant: true
	False                   // constant: false
	Null                    // constant: null
	Comment                 // comment: -- ... <LF> or // ... <LF>
	EOF                     // end of input
)

var tokenStr = [...]string{
	Invalid:    "invalid token",
	LBrace:     `"{"`,
	RBrace:     `"}"`,
	LSquare:    `"["`,
	RSquare:    `"]"`,
	Comma:      `","`,
	Separator:  "separator",
	Identifier: "identifier",
	Number:     "number",
	String:     "string",
	True:       "true",
	False:      "false",
	Null:       "null",
	Comment:    "comment",
	EOF:        "end of input",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// Dialect selects the grammar accepted by a Scanner and a parser.
type Dialect byte

// Constants defining the valid Dialect values.
const (
	Auto       Dialect = iota // decide from the first token
	Strict                    // standard JSON
	Simplified                // relaxed configuration syntax
)

var dialectStr = [...]string{Auto: "auto", Strict: "strict", Simplified: "simplified"}

func (d Dialect) String() string {
	if int(d) >= len(dialectStr) {
		return fmt.Sprintf("Dialect(%d)", d)
	}
	return dialectStr[d]
}

// A Scanner reads lexical tokens from an input stream. Each call to Next
// advances the scanner to the next token, or reports an error.
//
// Input is read in fixed-size chunks. The text of a token may span several
// chunks; it is copied into contiguous storage only when requested by Text.
// Chunks are recycled once no token refers to them.
type Scanner struct {
	c       cursor
	dialect Dialect
	tok     Token
	sp      chunkSpan
	err     error

	pos, end    int     // start and end offsets of current token
	first, last LineCol // start and end line/column of current token
}

// NewScanner constructs a new lexical scanner that consumes input from r.
func NewScanner(r io.Reader) *Scanner { return NewScannerSize(r, DefaultChunkSize) }

// NewScannerSize constructs a new lexical scanner that consumes input from r
// in chunks of the given size. If size <= 0, DefaultChunkSize is used.
func NewScannerSize(r io.Reader, size int) *Scanner {
	return &Scanner{c: newCursor(newChunkPool(r, size))}
}

// SetDialect sets the dialect used to recognize separators. In the Strict
// dialect only ":" is a separator; otherwise "=" is also accepted.
func (s *Scanner) SetDialect(d Dialect) { s.dialect = d }

// Dialect reports the current dialect of s.
func (s *Scanner) Dialect() Dialect { return s.dialect }

// Next advances s to the next token of the input, or reports an error.
// Comments are skipped. At the end of the input, Next returns io.EOF and the
// current token is EOF. Any other error has concrete type *SyntaxError.
func (s *Scanner) Next() error {
	for {
		if err := s.scan(); err != nil {
			return err
		} else if s.tok != Comment {
			return nil
		}
	}
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Err returns the last error reported by Next.
func (s *Scanner) Err() error { return s.err }

// Text returns a copy of the undecoded text of the current token. For a string
// the enclosing quotation marks are excluded.
func (s *Scanner) Text() []byte { return s.c.pool.appendSpan(nil, s.sp) }

// Float64 returns the value of the current token as a 64-bit floating-point
// number. The conversion does not depend on the locale.
func (s *Scanner) Float64() (float64, error) {
	return mem.ParseFloat(s.c.pool.view(s.sp), 64)
}

// Span returns the location span of the current token.
func (s *Scanner) Span() Span { return Span{Pos: s.pos, End: s.end} }

// Location returns the complete location of the current token.
func (s *Scanner) Location() Location {
	return Location{Span: s.Span(), First: s.first, Last: s.last}
}

// Errorf returns a *SyntaxError located at the start of the current token,
// wrapping err. If err is ErrUnexpectedToken and the current token is EOF,
// the error wraps ErrUnexpectedEOF instead.
func (s *Scanner) Errorf(err error, msg string, args ...any) *SyntaxError {
	if err == ErrUnexpectedToken && s.tok == EOF {
		err = ErrUnexpectedEOF
	}
	return &SyntaxError{Location: s.first, Message: fmt.Sprintf(msg, args...), err: err}
}

// scan reads a single token, which may be a comment.
func (s *Scanner) scan() error {
	s.c.releaseHeld()
	s.err = nil
	s.tok = Invalid

	ch, err := s.skipSpace()
	s.sp = s.c.openSpan()
	s.pos, s.first = s.c.off, s.c.lineCol()
	if err == io.EOF {
		s.tok = EOF
		s.closeToken()
		return s.setErr(io.EOF)
	} else if err != nil {
		return s.fail(err, "read failed: %v", err)
	}

	switch {
	case ch == '{', ch == '}', ch == '[', ch == ']', ch == ',':
		s.c.advance()
		s.tok = selfDelim(ch)

	case s.isSeparator(ch):
		s.c.advance()
		s.tok = Separator

	case ch == '-' || ch == '/':
		s.c.advance()
		next, err := s.c.peek()
		if err != nil {
			return s.failEOF(err)
		} else if next == ch {
			return s.scanComment()
		} else if ch == '/' {
			return s.scanName(false)
		}
		return s.scanNumber()

	case ch == '+':
		s.c.advance()
		return s.scanNumber()

	case isDigit(ch):
		return s.scanNumber()

	case ch == '"':
		return s.scanString()

	default:
		return s.scanName(true)
	}
	s.closeToken()
	return nil
}

// skipSpace discards whitespace and returns the first byte after it. Chunks
// consumed entirely by whitespace are released as the cursor leaves them.
func (s *Scanner) skipSpace() (byte, error) {
	for {
		s.c.releaseHeld()
		ch, err := s.c.peek()
		if err != nil || !isSpace(ch) {
			return ch, err
		}
		s.c.advance()
	}
}

// scanComment consumes the remainder of a line comment. The first byte of the
// comment marker has already been consumed. The text of a comment is never
// reported, so its chunks are released as the cursor leaves them.
func (s *Scanner) scanComment() error {
	s.tok = Comment
	for {
		s.c.releaseHeld()
		ch, err := s.c.peek()
		if err == io.EOF {
			break
		} else if err != nil {
			return s.failEOF(err)
		}
		s.c.advance()
		if ch == '\n' {
			break
		}
	}
	s.closeToken()
	return nil
}

// scanNumber consumes the remainder of a number. If a byte is found that can
// be neither part of a number nor end it, the token is reclassified as an
// identifier.
//
// A number has at most one decimal point and at most one exponent marker.
// Apart from a leading sign, a sign may only follow the exponent marker.
// No decimal point may follow the exponent marker.
func (s *Scanner) scanNumber() error {
	s.tok = Number
	var hadDecimal, hadExp bool
	hadSign := true
	for {
		ch, err := s.c.peek()
		if err == io.EOF {
			break
		} else if err != nil {
			return s.failEOF(err)
		}
		switch {
		case isDigit(ch):
		case ch == '.' && !hadDecimal:
			hadDecimal = true
		case (ch == '-' || ch == '+') && !hadSign:
			hadSign = true
		case (ch == 'e' || ch == 'E') && !hadExp:
			hadExp, hadSign, hadDecimal = true, false, true
		case s.isStop(ch):
			s.closeToken()
			return nil
		default:
			return s.scanName(false)
		}
		s.c.advance()
	}
	s.closeToken()
	return nil
}

var keywords = [...]struct {
	tok  Token
	text string
}{{True, "true"}, {False, "false"}, {Null, "null"}}

// scanName consumes an identifier up to the next stop byte. If canKeyword is
// true, the token began at the current position and is reported as a keyword
// token if its text is exactly "true", "false", or "null".
//
// An identifier must be followed by a stop byte; the end of input within an
// identifier is an error.
func (s *Scanner) scanName(canKeyword bool) error {
	s.tok = Identifier
	var match [len(keywords)]bool
	for i := range match {
		match[i] = canKeyword
	}
	var n int
	for {
		ch, err := s.c.peek()
		if err != nil {
			s.closeToken()
			return s.failEOF(err)
		} else if s.isStop(ch) {
			break
		}
		for i, kw := range keywords {
			match[i] = match[i] && n < len(kw.text) && kw.text[n] == ch
		}
		s.c.advance()
		n++
	}
	for i, kw := range keywords {
		if match[i] && n == len(kw.text) {
			s.tok = kw.tok
		}
	}
	s.closeToken()
	return nil
}

// scanString consumes a quoted string. The span of the token covers the bytes
// between the quotation marks. A quotation mark preceded by an unescaped
// backslash does not end the string.
func (s *Scanner) scanString() error {
	s.tok = String
	s.c.advance() // opening quote
	if _, err := s.c.peek(); err != nil {
		return s.failEOF(err)
	}
	s.sp = s.c.openSpan()

	var esc bool
	for {
		ch, err := s.c.peek()
		if err != nil {
			return s.failEOF(err)
		} else if ch == '"' && !esc {
			break
		}
		esc = !esc && ch == '\\'
		s.c.advance()
	}
	s.c.closeSpan(&s.sp)
	s.c.advance() // closing quote
	s.end, s.last = s.c.off, s.c.lineCol()
	return nil
}

// closeToken marks the end of the current token at the current position.
func (s *Scanner) closeToken() {
	s.c.closeSpan(&s.sp)
	s.end, s.last = s.c.off, s.c.lineCol()
}

func (s *Scanner) isSeparator(ch byte) bool {
	return ch == ':' || (ch == '=' && s.dialect != Strict)
}

// isStop reports whether ch ends a number or an identifier.
func (s *Scanner) isStop(ch byte) bool {
	switch ch {
	case '{', '}', '[', ']', ',':
		return true
	}
	return isSpace(ch) || s.isSeparator(ch)
}

func (s *Scanner) setErr(err error) error {
	s.err = err
	return err
}

// fail records and returns a *SyntaxError at the current input position.
func (s *Scanner) fail(err error, msg string, args ...any) error {
	return s.setErr(&SyntaxError{
		Location: s.c.lineCol(),
		Message:  fmt.Sprintf(msg, args...),
		err:      err,
	})
}

// failEOF reports err from the input in the middle of a token. The end of
// input is reported as ErrUnexpectedEOF.
func (s *Scanner) failEOF(err error) error {
	if err == io.EOF {
		return s.fail(ErrUnexpectedEOF, "unexpected end of input in %s", s.partial())
	}
	return s.fail(err, "read failed: %v", err)
}

// partial describes the kind of token being scanned when the input ended.
func (s *Scanner) partial() string {
	if s.tok == Invalid {
		return "token"
	}
	return s.tok.String()
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

func selfDelim(ch byte) Token {
	switch ch {
	case '{':
		return LBrace
	case '}':
		return RBrace
	case '[':
		return LSquare
	case ']':
		return RSquare
	}
	return Comma
}
