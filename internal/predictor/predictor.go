// Package predictor implements the left-neighbor delta filter used by the
// TGIF codec.
//
// The filter converts absolute sample values to differences from a
// predicted value, which tends to produce small residuals for images with
// local coherence. The predictor for a sample is its left neighbor within
// the row; at a row start it is the first sample of the previous row, and
// at the very first sample of a chunk it is zero. No predictor state
// crosses a chunk boundary, so chunks decode independently.
//
// Residuals are signed; Fold maps them to unsigned values (zigzag) so small
// magnitudes stay small for the entropy coder.
package predictor

// Encode computes residuals for a chunk of samples laid out row-major with
// the given width. dst must have len(samples) elements.
func Encode(samples []uint8, width int, dst []int16) {
	rowBase := uint8(0) // predictor at a row start; 0 for the first row
	for i, s := range samples {
		var pred uint8
		if i%width == 0 {
			pred = rowBase
			rowBase = s
		} else {
			pred = samples[i-1]
		}
		dst[i] = int16(s) - int16(pred)
	}
}

// Decode reconstructs samples from residuals, inverting Encode. dst must
// have len(residuals) elements. Reconstruction is strictly sequential:
// each sample depends on samples decoded earlier in the same chunk.
func Decode(residuals []int16, width int, dst []uint8) {
	rowBase := uint8(0)
	for i, r := range residuals {
		var pred uint8
		if i%width == 0 {
			pred = rowBase
		} else {
			pred = dst[i-1]
		}
		s := uint8(r + int16(pred))
		dst[i] = s
		if i%width == 0 {
			rowBase = s
		}
	}
}

// Fold maps a signed residual to an unsigned value: non-negative r becomes
// 2r, negative r becomes -2r-1.
func Fold(r int16) uint16 {
	if r >= 0 {
		return uint16(r) << 1
	}
	return uint16(-r)<<1 - 1
}

// Unfold inverts Fold.
func Unfold(u uint16) int16 {
	if u&1 == 0 {
		return int16(u >> 1)
	}
	return -int16(u>>1) - 1
}
