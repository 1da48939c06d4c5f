package tgif

import "fmt"

// Encode compresses img into a TGIF file. opts may be nil for defaults.
//
// The image is partitioned into row-range chunks near opts.ChunkSize raw
// bytes each, chunks are encoded concurrently, and the resulting spans are
// concatenated behind the header and chunk directory in chunk order. The
// output is byte-identical for any worker count.
func Encode(img *Image, opts *Options) ([]byte, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if uint64(img.Width)*uint64(img.Height) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, img.Width, img.Height)
	}

	rowsPerChunk := chunkRows(img.Width, o.ChunkSize)
	if rowsPerChunk > img.Height {
		rowsPerChunk = img.Height
	}
	chunks := planChunks(img.Height, rowsPerChunk)

	// Each chunk's span lands in its own indexed slot.
	spans := make([][]byte, len(chunks))
	err := forEachChunk(len(chunks), o.Workers, func(i int) error {
		c := chunks[i]
		spans[i] = encodeChunk(img.Pix[c.rowStart*img.Width:c.rowEnd*img.Width], img.Width, o.RemainderBits)
		return nil
	})
	if err != nil {
		return nil, err
	}

	h := header{
		width:         uint32(img.Width),
		height:        uint32(img.Height),
		remainderBits: uint8(o.RemainderBits),
		rowsPerChunk:  uint32(rowsPerChunk),
		chunkCount:    uint32(len(chunks)),
	}

	payloadStart := headerSize + len(chunks)*dirEntrySize
	total := payloadStart
	for _, span := range spans {
		total += len(span)
	}

	buf := make([]byte, 0, total)
	buf = h.appendHeader(buf)

	offset := uint64(payloadStart)
	for _, span := range spans {
		buf = dirEntry{offset: offset, length: uint32(len(span))}.appendEntry(buf)
		offset += uint64(len(span))
	}
	for _, span := range spans {
		buf = append(buf, span...)
	}

	return buf, nil
}
