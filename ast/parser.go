// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/creachadair/jconf"
)

// Options control the behavior of Parse. A nil *Options is ready for use and
// provides default values.
type Options struct {
	// The dialect of the input. If Auto, the dialect is chosen by the first
	// token of the input.
	Dialect jconf.Dialect

	// If not nil, a parse error is reported here before Parse returns.
	Diagnostics jconf.Diagnostics

	// The size in bytes of the chunks used to read the input.
	// If zero, jconf.DefaultChunkSize is used.
	ChunkSize int
}

func (o *Options) dialect() jconf.Dialect {
	if o == nil {
		return jconf.Auto
	}
	return o.Dialect
}

func (o *Options) diagnostics() jconf.Diagnostics {
	if o == nil {
		return nil
	}
	return o.Diagnostics
}

func (o *Options) chunkSize() int {
	if o == nil {
		return 0
	}
	return o.ChunkSize
}

// Parse parses and returns a single document from r. In the Strict dialect
// the document is an object or an array; in the Simplified dialect it is an
// object. In case of error, Parse returns nil and an error of concrete type
// *jconf.SyntaxError, which is also delivered to opts.Diagnostics.
func Parse(r io.Reader, opts *Options) (Value, error) {
	s := jconf.NewScannerSize(r, opts.chunkSize())
	s.SetDialect(opts.dialect())
	p := &parser{s: s}

	v, err := p.parseDocument()
	if err != nil {
		jconf.Report(opts.diagnostics(), err)
		return nil, err
	}
	return v, nil
}

// ParseString parses and returns a single document from s.
func ParseString(s string, opts *Options) (Value, error) {
	return Parse(strings.NewReader(s), opts)
}

// ParseBytes parses and returns a single document from data.
func ParseBytes(data []byte, opts *Options) (Value, error) {
	return Parse(bytes.NewReader(data), opts)
}

// A parser is a recursive-descent parser over the tokens of a scanner. There
// is always one token of lookahead, the current token of the scanner.
type parser struct {
	s *jconf.Scanner
}

func (p *parser) recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		if serr, ok := perr.(*jconf.SyntaxError); ok {
			*errp = serr
			return
		}
		panic(perr)
	}
}

func (p *parser) parseDocument() (_ Value, err error) {
	defer p.recoverParseError(&err)

	p.next()
	if p.s.Dialect() == jconf.Auto {
		switch p.tok() {
		case jconf.LBrace, jconf.LSquare:
			p.s.SetDialect(jconf.Strict)
		default:
			p.s.SetDialect(jconf.Simplified)
		}
	}

	var root Value
	if p.strict() {
		switch p.tok() {
		case jconf.LBrace:
			root = p.parseObject()
		case jconf.LSquare:
			root = p.parseArray()
		default:
			p.unexpected(jconf.LBrace, jconf.LSquare)
		}
	} else {
		root = p.parseMembers(true)
	}

	if p.tok() != jconf.EOF {
		p.unexpected(jconf.EOF)
	}
	return root, nil
}

// parseObject parses an object enclosed in braces.
// Precondition: token == LBrace.
func (p *parser) parseObject() *Object {
	p.require(jconf.LBrace)
	p.next()
	obj := p.parseMembers(false)
	p.require(jconf.RBrace)
	p.next()
	return obj
}

// parseMembers parses zero or more key-value members of an object. If root is
// true, the members end at the end of input, otherwise at "}".
func (p *parser) parseMembers(root bool) *Object {
	end := jconf.RBrace
	if root {
		end = jconf.EOF
	}
	obj := NewObject()
	for p.tok() != end {
		if p.strict() {
			p.require(jconf.String, end)
		} else {
			p.require(jconf.String, jconf.Identifier, end)
		}
		key := string(p.s.Text())
		p.next()

		p.require(jconf.Separator)
		p.next()

		// The first member with a given key wins.
		obj.Insert(key, p.parseValue())
		p.separate(end)
	}
	return obj
}

// parseArray parses an array enclosed in square brackets.
// Precondition: token == LSquare.
func (p *parser) parseArray() Array {
	p.require(jconf.LSquare)
	p.next()
	arr := Array{}
	for p.tok() != jconf.RSquare {
		arr = append(arr, p.parseValue())
		p.separate(jconf.RSquare)
	}
	p.next()
	return arr
}

// separate consumes the comma following an element of an object or array
// that ends with the given token. In the Strict dialect the comma is required
// unless the next token ends the enclosing value.
func (p *parser) separate(end jconf.Token) {
	switch tok := p.tok(); {
	case tok == jconf.Comma:
		p.next()
	case p.strict() && tok != end:
		p.unexpected(jconf.Comma, end)
	}
}

// parseValue parses a single value of any type.
func (p *parser) parseValue() Value {
	var v Value
	switch tok := p.tok(); tok {
	case jconf.LBrace:
		return p.parseObject()
	case jconf.LSquare:
		return p.parseArray()
	case jconf.Number:
		f, err := p.s.Float64()
		if err != nil {
			panic(p.s.Errorf(jconf.ErrMalformedNumber, "invalid number %q", p.s.Text()))
		}
		v = Number(f)
	case jconf.String:
		v = String(p.s.Text())
	case jconf.True:
		v = Bool(true)
	case jconf.False:
		v = Bool(false)
	case jconf.Null:
		v = Null{}
	case jconf.Identifier:
		panic(p.s.Errorf(jconf.ErrUnexpectedToken, "expected value, got identifier %q", p.s.Text()))
	default:
		panic(p.s.Errorf(jconf.ErrUnexpectedToken, "expected value, got %v", tok))
	}
	p.next()
	return v
}

func (p *parser) tok() jconf.Token { return p.s.Token() }

func (p *parser) strict() bool { return p.s.Dialect() == jconf.Strict }

// next advances to the next token. At the end of input the current token
// becomes EOF.
func (p *parser) next() {
	if err := p.s.Next(); err != nil && err != io.EOF {
		panic(err)
	}
}

// require reports a syntax error unless the current token is one of tokens.
func (p *parser) require(tokens ...jconf.Token) {
	for _, tok := range tokens {
		if p.tok() == tok {
			return
		}
	}
	p.unexpected(tokens...)
}

func (p *parser) unexpected(tokens ...jconf.Token) {
	panic(p.s.Errorf(jconf.ErrUnexpectedToken, "%s", tokLabel(tokens, p.tok())))
}

// tokLabel makes a human-readable summary string for the given token types.
func tokLabel(tokens []jconf.Token, got jconf.Token) string {
	var exp string
	if len(tokens) == 1 {
		exp = tokens[0].String()
	} else {
		last := len(tokens) - 1
		ss := make([]string, last)
		for i, tok := range tokens[:last] {
			ss[i] = tok.String()
		}
		exp = strings.Join(ss, ", ") + " or " + tokens[last].String()
	}
	return fmt.Sprintf("expected %s, got %v", exp, got)
}
