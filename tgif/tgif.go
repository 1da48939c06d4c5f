// Package tgif implements the TGIF lossless compression format for 8-bit
// grayscale raster images.
//
// A TGIF file is a header, a chunk directory, and a payload of
// independently decodable chunks. Each chunk covers a contiguous range of
// image rows, delta-filtered and Rice-coded into a byte-aligned bitstream.
// Because no filter state crosses a chunk boundary and the directory
// records every chunk's byte span, encode and decode fan chunks out across
// worker goroutines; parallelism affects speed, never the bytes produced.
package tgif

import "fmt"

const (
	// Magic identifies a TGIF file.
	Magic = "TGIF"

	// Version is the format version this package reads and writes.
	Version = 1

	// DefaultChunkSize is the target raw-pixel byte footprint of one chunk,
	// sized near a typical L1 data cache.
	DefaultChunkSize = 32 << 10

	// DefaultRemainderBits is the default Rice remainder-bit count.
	DefaultRemainderBits = 2

	// MaxRemainderBits is the largest valid remainder-bit count.
	MaxRemainderBits = 7

	// maxFolded is the largest zigzag-folded residual an 8-bit sample can
	// produce. Decoders reject anything above it as corruption.
	maxFolded = 510

	// maxPixels bounds width*height at decode so a corrupt header cannot
	// trigger an enormous allocation.
	maxPixels = 1 << 30
)

// Image is an 8-bit grayscale raster: Width*Height samples in row-major
// order.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates an image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Validate checks the image invariants: positive dimensions and exactly
// Width*Height samples.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("%w: nil image", ErrInvalidImage)
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidImage, img.Width, img.Height)
	}
	if len(img.Pix) != img.Width*img.Height {
		return fmt.Errorf("%w: %d samples for %dx%d", ErrInvalidImage, len(img.Pix), img.Width, img.Height)
	}
	return nil
}

// Options control encoding and the decode worker count.
type Options struct {
	// RemainderBits is the Rice parameter k in [0, 7]. Higher k favors
	// larger residual magnitudes.
	RemainderBits int

	// ChunkSize is the target raw-pixel byte footprint per chunk.
	ChunkSize int

	// Workers is the number of worker goroutines. 0 means all available
	// CPUs.
	Workers int
}

// DefaultOptions returns the default codec parameters.
func DefaultOptions() Options {
	return Options{
		RemainderBits: DefaultRemainderBits,
		ChunkSize:     DefaultChunkSize,
		Workers:       0,
	}
}

func (o Options) validate() error {
	if o.RemainderBits < 0 || o.RemainderBits > MaxRemainderBits {
		return fmt.Errorf("%w: remainder bits %d outside [0, %d]", ErrInvalidOptions, o.RemainderBits, MaxRemainderBits)
	}
	if o.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk size %d", ErrInvalidOptions, o.ChunkSize)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: worker count %d", ErrInvalidOptions, o.Workers)
	}
	return nil
}
