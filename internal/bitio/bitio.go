// Package bitio provides bit-level reading and writing over byte buffers.
//
// Bits are processed in MSB-first order (most significant bit of each byte
// first). This order is part of the TGIF version-1 bitstream contract and
// must not change without a version bump.
package bitio

import "errors"

// ErrOutOfData is returned when a read runs past the end of the buffer.
var ErrOutOfData = errors.New("bitio: out of data")

// Writer accumulates bits MSB-first into a growable byte buffer.
type Writer struct {
	buf     []byte
	curByte byte
	bitPos  uint // bits written in the current byte (0-7)
}

// NewWriter creates a Writer with capacity for sizeHint bytes.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// WriteBit writes a single bit (any nonzero value writes 1).
func (w *Writer) WriteBit(bit uint32) {
	if bit != 0 {
		w.curByte |= 1 << (7 - w.bitPos)
	}
	w.bitPos++
	if w.bitPos == 8 {
		w.buf = append(w.buf, w.curByte)
		w.curByte = 0
		w.bitPos = 0
	}
}

// WriteBits writes the low n bits of v, MSB first. n must be <= 32;
// bits of v above n are ignored.
func (w *Writer) WriteBits(v uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		w.WriteBit((v >> uint(i)) & 1)
	}
}

// Align pads the current byte with zero bits up to the next byte boundary.
// A no-op when already aligned.
func (w *Writer) Align() {
	if w.bitPos == 0 {
		return
	}
	w.buf = append(w.buf, w.curByte)
	w.curByte = 0
	w.bitPos = 0
}

// Bytes returns the completed bytes. The caller must Align first if a
// partial byte may be pending; pending bits are not included.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the length in bytes, counting any partial byte.
func (w *Writer) Len() int {
	n := len(w.buf)
	if w.bitPos > 0 {
		n++
	}
	return n
}

// Reset clears the writer for reuse, keeping the allocated buffer.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.curByte = 0
	w.bitPos = 0
}

// Reader reads bits MSB-first from an immutable byte slice.
type Reader struct {
	data   []byte
	pos    int  // byte position
	bitPos uint // bit position within the current byte (0-7)
}

// NewReader creates a Reader over data. The slice is not copied and must
// not be mutated while the Reader is in use.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads a single bit.
func (r *Reader) ReadBit() (uint32, error) {
	if r.pos >= len(r.data) {
		return 0, ErrOutOfData
	}
	bit := uint32(r.data[r.pos]>>(7-r.bitPos)) & 1
	r.bitPos++
	if r.bitPos == 8 {
		r.bitPos = 0
		r.pos++
	}
	return bit, nil
}

// ReadBits reads n bits (n <= 32), MSB first.
func (r *Reader) ReadBits(n uint) (uint32, error) {
	var v uint32
	for i := uint(0); i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v = v<<1 | bit
	}
	return v, nil
}

// Align advances to the next byte boundary, discarding any partial byte.
func (r *Reader) Align() {
	if r.bitPos != 0 {
		r.bitPos = 0
		r.pos++
	}
}

// Offset returns the current position in bits from the start of the buffer.
func (r *Reader) Offset() int {
	return r.pos*8 + int(r.bitPos)
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	rem := len(r.data)*8 - r.Offset()
	if rem < 0 {
		return 0
	}
	return rem
}
