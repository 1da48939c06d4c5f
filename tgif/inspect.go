package tgif

// FileInfo describes a TGIF file without decoding any pixels.
type FileInfo struct {
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	RemainderBits int         `json:"remainder_bits"`
	RowsPerChunk  int         `json:"rows_per_chunk"`
	ChunkCount    int         `json:"chunk_count"`
	PayloadBytes  int         `json:"payload_bytes"`
	FileBytes     int         `json:"file_bytes"`
	Chunks        []ChunkInfo `json:"chunks"`
}

// ChunkInfo describes one directory entry and the rows it covers.
type ChunkInfo struct {
	RowStart int    `json:"row_start"`
	RowEnd   int    `json:"row_end"`
	Offset   uint64 `json:"offset"`
	Length   int    `json:"length"`
}

// Ratio returns compressed file size over raw pixel size.
func (fi *FileInfo) Ratio() float64 {
	return float64(fi.FileBytes) / float64(fi.Width*fi.Height)
}

// Inspect parses and validates the header and chunk directory, returning
// file metadata. The payload is bounds-checked but not decoded.
func Inspect(data []byte) (*FileInfo, error) {
	h, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	dir, err := parseDirectory(data, h)
	if err != nil {
		return nil, err
	}

	chunks := planChunks(int(h.height), int(h.rowsPerChunk))
	info := &FileInfo{
		Width:         int(h.width),
		Height:        int(h.height),
		RemainderBits: int(h.remainderBits),
		RowsPerChunk:  int(h.rowsPerChunk),
		ChunkCount:    len(chunks),
		FileBytes:     len(data),
		Chunks:        make([]ChunkInfo, len(chunks)),
	}
	for i, c := range chunks {
		info.Chunks[i] = ChunkInfo{
			RowStart: c.rowStart,
			RowEnd:   c.rowEnd,
			Offset:   dir[i].offset,
			Length:   int(dir[i].length),
		}
		info.PayloadBytes += int(dir[i].length)
	}
	return info, nil
}
