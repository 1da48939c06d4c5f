package tgif

import (
	"fmt"

	"github.com/mrjoshuak/go-tgif/internal/bitio"
	"github.com/mrjoshuak/go-tgif/internal/predictor"
	"github.com/mrjoshuak/go-tgif/internal/rice"
)

// chunkRange is a contiguous range of image rows [rowStart, rowEnd).
type chunkRange struct {
	rowStart int
	rowEnd   int
}

func (c chunkRange) rows() int {
	return c.rowEnd - c.rowStart
}

// chunkRows returns the number of rows per chunk for a target chunk byte
// footprint. A chunk always holds at least one full row, even when a single
// row exceeds the target.
func chunkRows(rowBytes, targetBytes int) int {
	rows := targetBytes / rowBytes
	if rows < 1 {
		rows = 1
	}
	return rows
}

// planChunks partitions [0, height) into consecutive ranges of rowsPerChunk
// rows; the final chunk absorbs any remainder and may be shorter.
func planChunks(height, rowsPerChunk int) []chunkRange {
	n := (height + rowsPerChunk - 1) / rowsPerChunk
	chunks := make([]chunkRange, n)
	for i := range chunks {
		start := i * rowsPerChunk
		end := start + rowsPerChunk
		if end > height {
			end = height
		}
		chunks[i] = chunkRange{rowStart: start, rowEnd: end}
	}
	return chunks
}

// encodeChunk compresses one chunk's samples into a self-contained,
// byte-aligned bitstream: delta filter, zigzag fold, Rice code per residual
// in scan order, zero padding to the next byte boundary.
func encodeChunk(samples []uint8, width, k int) []byte {
	w := bitio.NewWriter(len(samples)) // sized for the no-compression case

	residuals := make([]int16, len(samples))
	predictor.Encode(samples, width, residuals)
	for _, r := range residuals {
		rice.Encode(w, uint32(predictor.Fold(r)), uint(k))
	}

	w.Align()
	return w.Bytes()
}

// decodeChunk reconstructs one chunk's samples from its bitstream into dst,
// which must hold exactly rows*width samples.
func decodeChunk(data []byte, width, rows, k int, dst []uint8) error {
	n := rows * width
	if len(dst) != n {
		return fmt.Errorf("%w: %d samples for %d rows of width %d", ErrShapeMismatch, len(dst), rows, width)
	}

	r := bitio.NewReader(data)
	maxQuotient := uint32(maxFolded) >> uint(k)

	residuals := make([]int16, n)
	for i := range residuals {
		u, err := rice.Decode(r, uint(k), maxQuotient)
		if err != nil {
			return fmt.Errorf("%w: sample %d: %v", ErrMalformedStream, i, err)
		}
		if u > maxFolded {
			return fmt.Errorf("%w: sample %d: folded residual %d out of range", ErrMalformedStream, i, u)
		}
		residuals[i] = predictor.Unfold(uint16(u))
	}

	predictor.Decode(residuals, width, dst)
	return nil
}
