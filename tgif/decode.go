package tgif

import "fmt"

// Decode reconstructs the image from a TGIF file using all available CPUs.
func Decode(data []byte) (*Image, error) {
	return DecodeWithOptions(data, nil)
}

// DecodeWithOptions reconstructs the image from a TGIF file. Only
// opts.Workers is consulted; codec parameters come from the file header.
//
// The header and directory are fully parsed and validated before any chunk
// work is dispatched. Chunks then decode concurrently into disjoint row
// ranges of the output buffer. On the first chunk failure the remaining
// work is abandoned and no partial image is returned.
func DecodeWithOptions(data []byte, opts *Options) (*Image, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	dir, err := parseDirectory(data, h)
	if err != nil {
		return nil, err
	}

	workers := 0
	if opts != nil {
		workers = opts.Workers
	}

	width := int(h.width)
	k := int(h.remainderBits)
	chunks := planChunks(int(h.height), int(h.rowsPerChunk))
	img := NewImage(width, int(h.height))

	err = forEachChunk(len(chunks), workers, func(i int) error {
		c := chunks[i]
		e := dir[i]
		span := data[e.offset : e.offset+uint64(e.length)]
		dst := img.Pix[c.rowStart*width : c.rowEnd*width]
		if err := decodeChunk(span, width, c.rows(), k, dst); err != nil {
			return fmt.Errorf("chunk %d: %w", i, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return img, nil
}
