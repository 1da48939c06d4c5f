package tgif

import (
	"encoding/binary"
	"fmt"
)

// Version-1 file layout, all integers big-endian:
//
//	offset 0   magic "TGIF" (4 bytes)
//	offset 4   version (u8)
//	offset 5   width (u32)
//	offset 9   height (u32)
//	offset 13  remainder bits k (u8, 0..=7)
//	offset 14  rows per chunk (u32)
//	offset 18  chunk count (u32)
//	offset 22  directory: chunk count entries of (offset u64, length u32)
//	...        payload: concatenated byte-aligned chunk bitstreams
//
// Directory offsets are absolute byte positions from the start of the
// file. The rows-per-chunk field is stored explicitly because it is not
// always recoverable from the chunk count alone.
const (
	headerSize   = 22
	dirEntrySize = 12
)

type header struct {
	width         uint32
	height        uint32
	remainderBits uint8
	rowsPerChunk  uint32
	chunkCount    uint32
}

type dirEntry struct {
	offset uint64
	length uint32
}

// appendHeader serializes h onto buf.
func (h header) appendHeader(buf []byte) []byte {
	buf = append(buf, Magic...)
	buf = append(buf, Version)
	buf = binary.BigEndian.AppendUint32(buf, h.width)
	buf = binary.BigEndian.AppendUint32(buf, h.height)
	buf = append(buf, h.remainderBits)
	buf = binary.BigEndian.AppendUint32(buf, h.rowsPerChunk)
	buf = binary.BigEndian.AppendUint32(buf, h.chunkCount)
	return buf
}

// appendEntry serializes e onto buf.
func (e dirEntry) appendEntry(buf []byte) []byte {
	buf = binary.BigEndian.AppendUint64(buf, e.offset)
	buf = binary.BigEndian.AppendUint32(buf, e.length)
	return buf
}

// parseHeader reads and validates the fixed header.
func parseHeader(data []byte) (header, error) {
	if len(data) < len(Magic) || string(data[:len(Magic)]) != Magic {
		return header{}, ErrBadMagic
	}
	if len(data) < headerSize {
		return header{}, fmt.Errorf("%w: truncated header (%d bytes)", ErrCorruptDirectory, len(data))
	}
	if v := data[4]; v != Version {
		return header{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, v)
	}

	h := header{
		width:         binary.BigEndian.Uint32(data[5:9]),
		height:        binary.BigEndian.Uint32(data[9:13]),
		remainderBits: data[13],
		rowsPerChunk:  binary.BigEndian.Uint32(data[14:18]),
		chunkCount:    binary.BigEndian.Uint32(data[18:22]),
	}

	if h.width == 0 || h.height == 0 {
		return header{}, fmt.Errorf("%w: dimensions %dx%d", ErrCorruptDirectory, h.width, h.height)
	}
	if uint64(h.width)*uint64(h.height) > maxPixels {
		return header{}, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, h.width, h.height)
	}
	if h.remainderBits > MaxRemainderBits {
		return header{}, fmt.Errorf("%w: remainder bits %d", ErrCorruptDirectory, h.remainderBits)
	}
	if h.rowsPerChunk == 0 {
		return header{}, fmt.Errorf("%w: zero rows per chunk", ErrCorruptDirectory)
	}

	// The chunk count must match the partition the rows-per-chunk field
	// implies; anything else cannot address the payload coherently.
	want := (uint64(h.height) + uint64(h.rowsPerChunk) - 1) / uint64(h.rowsPerChunk)
	if uint64(h.chunkCount) != want {
		return header{}, fmt.Errorf("%w: chunk count %d, expected %d for height %d and %d rows per chunk",
			ErrCorruptDirectory, h.chunkCount, want, h.height, h.rowsPerChunk)
	}

	return h, nil
}

// parseDirectory reads the chunk directory and validates that its entries
// are monotonically increasing, non-overlapping, and within file bounds.
func parseDirectory(data []byte, h header) ([]dirEntry, error) {
	dirEnd := headerSize + int(h.chunkCount)*dirEntrySize
	if len(data) < dirEnd {
		return nil, fmt.Errorf("%w: truncated directory (%d entries, %d bytes)",
			ErrCorruptDirectory, h.chunkCount, len(data))
	}

	entries := make([]dirEntry, h.chunkCount)
	prevEnd := uint64(dirEnd)
	for i := range entries {
		pos := headerSize + i*dirEntrySize
		e := dirEntry{
			offset: binary.BigEndian.Uint64(data[pos : pos+8]),
			length: binary.BigEndian.Uint32(data[pos+8 : pos+12]),
		}
		if e.length == 0 {
			return nil, fmt.Errorf("%w: entry %d has zero length", ErrCorruptDirectory, i)
		}
		if e.offset < prevEnd {
			return nil, fmt.Errorf("%w: entry %d at offset %d overlaps preceding data ending at %d",
				ErrCorruptDirectory, i, e.offset, prevEnd)
		}
		end := e.offset + uint64(e.length)
		if end < e.offset || end > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d spans [%d, %d) beyond file length %d",
				ErrCorruptDirectory, i, e.offset, end, len(data))
		}
		entries[i] = e
		prevEnd = end
	}

	return entries, nil
}
