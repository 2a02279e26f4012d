// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"io"
	"strings"
	"testing/iotest"
)

// A Source is a named constructor for a reader over a fixed input.
type Source struct {
	Name string
	Open func(input string) io.Reader
}

// Chunked returns a reader that delivers input in reads of at most n bytes.
func Chunked(input string, n int) io.Reader { return &chunkReader{s: input, n: n} }

type chunkReader struct {
	s string
	n int
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if c.s == "" {
		return 0, io.EOF
	}
	n := min(len(p), c.n, len(c.s))
	copy(p, c.s[:n])
	c.s = c.s[n:]
	return n, nil
}

// Sources returns readers that deliver their input with a variety of read
// sizes, for checking that results do not depend on how the input arrives.
func Sources() []Source {
	srcs := []Source{
		{"Whole", func(s string) io.Reader { return strings.NewReader(s) }},
		{"OneByte", func(s string) io.Reader { return iotest.OneByteReader(strings.NewReader(s)) }},
		{"HalfReader", func(s string) io.Reader { return iotest.HalfReader(strings.NewReader(s)) }},
		{"DataErr", func(s string) io.Reader { return iotest.DataErrReader(strings.NewReader(s)) }},
	}
	for _, n := range []int{2, 3, 7, 64} {
		srcs = append(srcs, Source{
			Name: fmt.Sprintf("Chunk%d", n),
			Open: func(s string) io.Reader { return Chunked(s, n) },
		})
	}
	return srcs
}

// ChunkSizes are chunk capacities for exercising tokens that span chunks.
var ChunkSizes = []int{1, 2, 3, 5, 16, 1024}
