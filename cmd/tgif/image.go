package main

import (
	"fmt"
	"image"
	"os"

	// Registered decoders for encode-side interop.
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	"github.com/mrjoshuak/go-tgif/tgif"
)

// loadImage decodes any registered image format from disk and converts it
// to 8-bit grayscale.
func loadImage(path string) (*tgif.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return tgif.FromImage(m), nil
}

// writePNG stores a decoded grayscale image as PNG.
func writePNG(path string, img *tgif.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.Gray()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
