package tgif

import "errors"

// Decode and encode errors. Per-chunk failures are wrapped with the index
// of the offending chunk; use errors.Is to test the failure kind.
var (
	ErrBadMagic           = errors.New("tgif: bad magic")
	ErrUnsupportedVersion = errors.New("tgif: unsupported format version")
	ErrCorruptDirectory   = errors.New("tgif: corrupt header or chunk directory")
	ErrMalformedStream    = errors.New("tgif: malformed chunk bitstream")
	ErrShapeMismatch      = errors.New("tgif: chunk shape mismatch")
	ErrImageTooLarge      = errors.New("tgif: image dimensions exceed limit")
	ErrInvalidImage       = errors.New("tgif: invalid image")
	ErrInvalidOptions     = errors.New("tgif: invalid options")
)
