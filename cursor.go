// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jconf

// A cursor tracks the read position in the chunks of a pool.
type cursor struct {
	pool *chunkPool
	head int // oldest chunk still held, or noChunk
	cur  int // current chunk, or noChunk before the first read
	pos  int // offset of the next byte in cur

	off       int // absolute offset of the next byte
	line, col int // line (1-based) and column (0-based) of the next byte
}

func newCursor(p *chunkPool) cursor {
	return cursor{pool: p, head: noChunk, cur: noChunk, line: 1}
}

// peek returns the byte at the current position without advancing. When the
// current chunk is exhausted, peek acquires and links the next chunk from the
// pool. At the end of input peek returns io.EOF.
func (c *cursor) peek() (byte, error) {
	for c.cur == noChunk || c.pos >= c.pool.chunks[c.cur].n {
		id, err := c.pool.acquire()
		if err != nil {
			return 0, err
		}
		if c.cur != noChunk {
			c.pool.chunks[c.cur].next = id
		}
		if c.head == noChunk {
			c.head = id
		}
		c.cur, c.pos = id, 0
	}
	return c.pool.chunks[c.cur].data[c.pos], nil
}

// advance moves past the current byte, which must have been reported by a
// previous call to peek.
func (c *cursor) advance() {
	switch ch := c.pool.chunks[c.cur].data[c.pos]; {
	case ch == '\n':
		c.line++
		c.col = 0
	case !isControl(ch):
		c.col++
	}
	c.pos++
	c.off++
}

// releaseHeld returns every chunk before the current chunk to the pool.
// After releaseHeld, no span opened before the call may be used.
func (c *cursor) releaseHeld() {
	for c.head != c.cur {
		next := c.pool.chunks[c.head].next
		c.pool.release(c.head)
		c.head = next
	}
}

// openSpan returns a span beginning at the current position.
func (c *cursor) openSpan() chunkSpan {
	sp := chunkSpan{first: c.cur, pos: c.pos, last: c.cur, end: c.pos}
	if c.cur != noChunk {
		sp.gen = c.pool.chunks[c.cur].gen
	}
	return sp
}

// closeSpan sets the end of sp to the current position.
func (c *cursor) closeSpan(sp *chunkSpan) { sp.last, sp.end = c.cur, c.pos }

// lineCol returns the line and column of the current position.
func (c *cursor) lineCol() LineCol { return LineCol{Line: c.line, Column: c.col} }

func isControl(ch byte) bool { return ch < ' ' || ch == 0x7f }
