// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jconf implements a streaming scanner for JSON and for a relaxed
// configuration dialect of JSON.
//
// # Dialects
//
// The Strict dialect is standard JSON. The Simplified dialect relaxes it for
// hand-written configuration files:
//
//   - the document is an object whose braces are omitted;
//   - object keys may be unquoted identifiers;
//   - "=" may be used in place of ":";
//   - commas between members and elements are optional.
//
// Both dialects accept line comments beginning with "//" or "--".
//
//	-- Simplified
//	name = "example"
//	ports = [80 443]
//	limits = { cpu = 2, memory: 512 }
//
// When the dialect is Auto, the first token of the input decides: a document
// beginning with "{" or "[" is Strict, and any other document is Simplified.
//
// # Scanning
//
// The Scanner type implements a lexical scanner. Construct a scanner from an
// io.Reader and call its Next method to iterate over the stream. Next advances
// to the next input token and returns nil, or reports an error:
//
//	s := jconf.NewScanner(input)
//	for s.Next() == nil {
//	   log.Printf("Next token: %v", s.Token())
//	}
//
// Next returns io.EOF when the input has been fully consumed. Any other error
// has concrete type *jconf.SyntaxError.
//
// The scanner reads its input in fixed-size chunks and does not copy the text
// of a token until it is requested. Chunks are reused once the scanner has
// moved past them, so a scanner holds only the chunks spanned by the current
// token, however large the input.
//
// # Parsing
//
// Package ast parses a complete document into a tree of values; see
// [github.com/creachadair/jconf/ast.Parse].
package jconf
