// Package rice implements Rice coding, a variable-length entropy code for
// non-negative integers.
//
// A value v is split by the remainder-bit parameter k into a quotient v>>k,
// written in unary as that many one-bits followed by a zero terminator, and
// the low k bits of v written as a fixed-width field. Small values and small
// k produce short codes; k = 0 degenerates to pure unary.
package rice

import (
	"errors"

	"github.com/mrjoshuak/go-tgif/internal/bitio"
)

// ErrNoTerminator is returned when a unary run exceeds the caller's bound
// without reaching its zero terminator. It indicates corrupt input.
var ErrNoTerminator = errors.New("rice: unary terminator not found")

// Encode writes v with remainder-bit count k (0 <= k <= 31).
func Encode(w *bitio.Writer, v uint32, k uint) {
	q := v >> k
	for ; q > 0; q-- {
		w.WriteBit(1)
	}
	w.WriteBit(0)
	w.WriteBits(v, k)
}

// Decode reads one Rice-coded value with remainder-bit count k.
//
// maxQuotient bounds the unary scan: a run of more than maxQuotient one-bits
// fails with ErrNoTerminator instead of walking an arbitrarily long stretch
// of corrupt input. Truncated input surfaces as bitio.ErrOutOfData.
func Decode(r *bitio.Reader, k uint, maxQuotient uint32) (uint32, error) {
	var q uint32
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit == 0 {
			break
		}
		q++
		if q > maxQuotient {
			return 0, ErrNoTerminator
		}
	}

	rem, err := r.ReadBits(k)
	if err != nil {
		return 0, err
	}
	return q<<k | rem, nil
}
