// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jconf

import (
	"io"

	"go4.org/mem"
)

// DefaultChunkSize is the capacity in bytes of the input chunks used by a
// Scanner when no other size is requested.
const DefaultChunkSize = 1024

// noChunk is the link value for "no chunk".
const noChunk = -1

// A chunk is a fixed-capacity buffer of input. Chunks are linked forward in
// input order so that a lexeme may span several of them.
type chunk struct {
	data []byte // len(data) is the capacity
	n    int    // number of valid bytes in data
	next int    // index of the following chunk, or noChunk
	gen  uint32 // incremented each time the chunk is recycled
}

// A chunkPool is an arena of chunks filled on demand from an input reader.
// Chunks are addressed by their index in the arena. Released chunks are kept
// on a free list and reused by later calls to acquire.
type chunkPool struct {
	r      io.Reader
	size   int
	chunks []*chunk
	free   []int

	done bool  // the input is exhausted
	err  error // sticky read error, if any
}

func newChunkPool(r io.Reader, size int) *chunkPool {
	if size <= 0 {
		size = DefaultChunkSize
	}
	return &chunkPool{r: r, size: size}
}

// acquire returns the index of a chunk filled with up to p.size bytes from the
// input. Short reads are retried until the chunk is full or the input is
// exhausted. If no bytes are available, acquire returns io.EOF; if the input
// reported some other error, acquire returns that error.
func (p *chunkPool) acquire() (int, error) {
	if p.err != nil {
		return noChunk, p.err
	} else if p.done {
		return noChunk, io.EOF
	}

	id := p.alloc()
	c := p.chunks[id]
	for c.n < len(c.data) {
		nr, err := p.r.Read(c.data[c.n:])
		c.n += nr
		if err == io.EOF || (nr == 0 && err == nil) {
			p.done = true
			break
		} else if err != nil {
			p.err = err
			break
		}
	}
	if c.n == 0 {
		p.release(id)
		if p.err != nil {
			return noChunk, p.err
		}
		return noChunk, io.EOF
	}
	return id, nil
}

// alloc returns the index of an empty chunk, reusing a released chunk if one
// is available.
func (p *chunkPool) alloc() int {
	if n := len(p.free); n > 0 {
		id := p.free[n-1]
		p.free = p.free[:n-1]
		c := p.chunks[id]
		c.n, c.next = 0, noChunk
		return id
	}
	p.chunks = append(p.chunks, &chunk{data: make([]byte, p.size), next: noChunk})
	return len(p.chunks) - 1
}

// release returns chunk id to the free list. Any span beginning in the chunk
// is invalidated.
func (p *chunkPool) release(id int) {
	c := p.chunks[id]
	c.gen++
	c.n, c.next = 0, noChunk
	p.free = append(p.free, id)
}

// A chunkSpan is the position of a lexeme in the arena, from offset pos of
// chunk first to offset end of chunk last. The last chunk is reachable from
// the first by following links.
type chunkSpan struct {
	first, pos int
	last, end  int
	gen        uint32 // generation of the first chunk when the span was opened
}

// check panics if the first chunk of sp has been recycled since sp was opened.
func (p *chunkPool) check(sp chunkSpan) {
	if sp.first == noChunk {
		return
	} else if p.chunks[sp.first].gen != sp.gen {
		panic("jconf: use of a span whose input was released")
	}
}

// view returns a read-only view of the bytes of sp. When sp lies within a
// single chunk, the view shares storage with the chunk and is valid only until
// the chunk is released; otherwise it is a contiguous copy.
func (p *chunkPool) view(sp chunkSpan) mem.RO {
	p.check(sp)
	if sp.first == noChunk {
		return mem.RO{}
	} else if sp.first == sp.last {
		return mem.B(p.chunks[sp.first].data[sp.pos:sp.end])
	}
	return mem.B(p.appendSpan(nil, sp))
}

// appendSpan appends a copy of the bytes of sp to buf and returns the result.
func (p *chunkPool) appendSpan(buf []byte, sp chunkSpan) []byte {
	p.check(sp)
	if sp.first == noChunk {
		return buf
	}
	if buf == nil {
		buf = make([]byte, 0, p.spanLen(sp))
	}
	for id, lo := sp.first, sp.pos; ; id, lo = p.chunks[id].next, 0 {
		c := p.chunks[id]
		if id == sp.last {
			return mem.Append(buf, mem.B(c.data[lo:sp.end]))
		}
		buf = mem.Append(buf, mem.B(c.data[lo:c.n]))
	}
}

// spanLen reports the number of bytes covered by sp.
func (p *chunkPool) spanLen(sp chunkSpan) int {
	var n int
	for id, lo := sp.first, sp.pos; ; id, lo = p.chunks[id].next, 0 {
		if id == sp.last {
			return n + sp.end - lo
		}
		n += p.chunks[id].n - lo
	}
}
