package tgif

import (
	"image"
	"image/color"
)

// FromImage converts a decoded stdlib image into an 8-bit grayscale Image,
// applying the standard luma conversion for color inputs.
func FromImage(m image.Image) *Image {
	b := m.Bounds()
	img := NewImage(b.Dx(), b.Dy())

	if g, ok := m.(*image.Gray); ok {
		for y := 0; y < img.Height; y++ {
			src := g.Pix[y*g.Stride : y*g.Stride+img.Width]
			copy(img.Pix[y*img.Width:], src)
		}
		return img
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix[i] = color.GrayModel.Convert(m.At(x, y)).(color.Gray).Y
			i++
		}
	}
	return img
}

// Gray returns a copy of the image as a stdlib *image.Gray.
func (img *Image) Gray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, img.Width, img.Height))
	copy(g.Pix, img.Pix)
	return g
}
