package bitio

import (
	"bytes"
	"errors"
	"testing"
)

func TestWriterSingleBits(t *testing.T) {
	w := NewWriter(1)
	for _, bit := range []uint32{1, 0, 1, 0, 1, 0, 1, 0} {
		w.WriteBit(bit)
	}
	if got := w.Bytes(); !bytes.Equal(got, []byte{0xAA}) {
		t.Errorf("bits 10101010: got %x, want aa", got)
	}
}

func TestWriterBitsMSBFirst(t *testing.T) {
	w := NewWriter(2)
	w.WriteBits(0x5, 3) // 101
	w.WriteBits(0x0, 2) // 00
	w.WriteBits(0x7, 3) // 111
	if got := w.Bytes(); !bytes.Equal(got, []byte{0xA7}) {
		t.Errorf("got %x, want a7", got)
	}
}

func TestWriterMasksHighBits(t *testing.T) {
	w := NewWriter(1)
	w.WriteBits(0xFFFFFFFF, 4)
	w.Align()
	if got := w.Bytes(); !bytes.Equal(got, []byte{0xF0}) {
		t.Errorf("got %x, want f0", got)
	}
}

func TestWriterAlign(t *testing.T) {
	w := NewWriter(2)
	w.WriteBits(0x3, 2) // 11
	w.Align()
	w.WriteBits(0x1, 1) // 1
	w.Align()
	if got := w.Bytes(); !bytes.Equal(got, []byte{0xC0, 0x80}) {
		t.Errorf("got %x, want c080", got)
	}

	// Align on a byte boundary is a no-op.
	w.Align()
	if len(w.Bytes()) != 2 {
		t.Errorf("double align grew buffer to %d bytes", len(w.Bytes()))
	}
}

func TestWriterLen(t *testing.T) {
	w := NewWriter(4)
	if w.Len() != 0 {
		t.Errorf("empty writer Len = %d", w.Len())
	}
	w.WriteBit(1)
	if w.Len() != 1 {
		t.Errorf("partial byte Len = %d, want 1", w.Len())
	}
	w.WriteBits(0, 7)
	w.WriteBit(0)
	if w.Len() != 2 {
		t.Errorf("9 bits Len = %d, want 2", w.Len())
	}
}

func TestReaderBits(t *testing.T) {
	r := NewReader([]byte{0xA7, 0x80})

	v, err := r.ReadBits(3)
	if err != nil || v != 0x5 {
		t.Fatalf("ReadBits(3) = %d, %v; want 5, nil", v, err)
	}
	v, err = r.ReadBits(5)
	if err != nil || v != 0x07 {
		t.Fatalf("ReadBits(5) = %d, %v; want 7, nil", v, err)
	}
	bit, err := r.ReadBit()
	if err != nil || bit != 1 {
		t.Fatalf("ReadBit = %d, %v; want 1, nil", bit, err)
	}
}

func TestReaderOutOfData(t *testing.T) {
	r := NewReader([]byte{0xFF})
	if _, err := r.ReadBits(8); err != nil {
		t.Fatalf("ReadBits(8): %v", err)
	}
	if _, err := r.ReadBit(); !errors.Is(err, ErrOutOfData) {
		t.Errorf("read past end: got %v, want ErrOutOfData", err)
	}

	// A partial multi-bit read past the end fails too.
	r = NewReader([]byte{0xFF})
	if _, err := r.ReadBits(9); !errors.Is(err, ErrOutOfData) {
		t.Errorf("ReadBits(9) over 8 bits: got %v, want ErrOutOfData", err)
	}
}

func TestReaderAlign(t *testing.T) {
	r := NewReader([]byte{0xFF, 0x01})
	if _, err := r.ReadBits(3); err != nil {
		t.Fatal(err)
	}
	r.Align()
	v, err := r.ReadBits(8)
	if err != nil || v != 0x01 {
		t.Errorf("after align: got %d, %v; want 1, nil", v, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestRoundTrip(t *testing.T) {
	vals := []struct {
		v uint32
		n uint
	}{
		{0, 1}, {1, 1}, {5, 3}, {255, 8}, {256, 9}, {0xDEADBEEF, 32}, {0, 13},
	}

	w := NewWriter(16)
	for _, tc := range vals {
		w.WriteBits(tc.v, tc.n)
	}
	w.Align()

	r := NewReader(w.Bytes())
	for _, tc := range vals {
		got, err := r.ReadBits(tc.n)
		if err != nil {
			t.Fatalf("ReadBits(%d): %v", tc.n, err)
		}
		want := tc.v
		if tc.n < 32 {
			want &= 1<<tc.n - 1
		}
		if got != want {
			t.Errorf("round-trip %d bits: got %d, want %d", tc.n, got, want)
		}
	}
}

func TestWriterReset(t *testing.T) {
	w := NewWriter(4)
	w.WriteBits(0xFF, 8)
	w.WriteBit(1)
	w.Reset()
	if w.Len() != 0 {
		t.Errorf("Len after Reset = %d", w.Len())
	}
	w.WriteBits(0x0F, 8)
	if got := w.Bytes(); !bytes.Equal(got, []byte{0x0F}) {
		t.Errorf("after reset: got %x, want 0f", got)
	}
}
