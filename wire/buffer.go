// Package wire provides byte-level read/write primitives for the pto wire
// format: fixed-width little-endian numbers, length-prefixed byte strings,
// array-count framing, and the varint7 variable-length signed integer.
package wire

const (
	// inlineSize is the size of the buffer's embedded array. Messages that
	// fit within this never touch the heap.
	inlineSize = 128

	// TooBig is a sanity ceiling on buffer growth, mirroring the teacher
	// lineage's encio.TooBig / gram.TooBig checks before allocation.
	TooBig = 1 << 26
)

// Buffer is a growable, append-only byte buffer used by the encoder.
//
// It starts backed by an inline array embedded in the struct; once that is
// exhausted it switches to a heap-allocated slice, doubling capacity as
// needed. The inline array is never retained behind a pointer once the
// buffer has escaped to the heap, so it is reclaimed by ordinary garbage
// collection rather than an explicit free.
type Buffer struct {
	inline [inlineSize]byte
	buf    []byte
}

// NewBuffer returns a Buffer ready to write into, backed by its inline array.
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.buf = b.inline[:0]
	return b
}

// Bytes returns the written portion of the buffer.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of bytes written so far.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// grow extends the buffer by n bytes and returns the offset the caller
// should start writing at. It panics if the buffer would exceed TooBig;
// a well-formed message never approaches that size, so this only fires on
// a schema/value-tree bug that would otherwise exhaust memory silently.
func (b *Buffer) grow(n int) int {
	l := len(b.buf)
	if l+n > TooBig {
		panic("wire: buffer grew past sanity limit")
	}
	if l+n <= cap(b.buf) {
		b.buf = b.buf[:l+n]
		return l
	}

	newCap := cap(b.buf)*2 + n
	if newCap < l+n {
		newCap = l + n
	}
	nb := make([]byte, l+n, newCap)
	copy(nb, b.buf)
	b.buf = nb
	return l
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) {
	off := b.grow(1)
	b.buf[off] = c
}

// Write appends buff verbatim.
func (b *Buffer) Write(buff []byte) {
	off := b.grow(len(buff))
	copy(b.buf[off:], buff)
}

// WriteBuff reserves n bytes and returns a slice over them for the caller
// to fill directly, avoiding an intermediate copy.
func (b *Buffer) WriteBuff(n int) []byte {
	off := b.grow(n)
	return b.buf[off : off+n]
}
