// Package render implements the surfaces that environments draw their
// frames on
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"gorgonia.org/tensor"
)

// Surface is a display that environments present frames on in human
// render mode. Surfaces are created lazily by environments on the
// first call to Render and closed exactly once.
type Surface interface {
	Present(frame image.Image) error
	Close() error
}

// Canvas is an off-screen drawing context that environments draw each
// frame on
type Canvas struct {
	*gg.Context
}

// NewCanvas returns a new Canvas with the given dimensions in pixels
func NewCanvas(width, height int) *Canvas {
	return &Canvas{gg.NewContext(width, height)}
}

// Frame returns the current contents of the canvas as a
// height × width × 3 tensor of uint8 RGB values
func (c *Canvas) Frame() *tensor.Dense {
	return ToTensor(c.Image())
}

// ToTensor converts an image to a height × width × 3 tensor of uint8
// RGB values. The alpha channel is dropped.
func ToTensor(img image.Image) *tensor.Dense {
	bounds := img.Bounds()
	height, width := bounds.Dy(), bounds.Dx()

	data := make([]uint8, height*width*3)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x,
				bounds.Min.Y+y)).(color.RGBA)

			i := (y*width + x) * 3
			data[i] = c.R
			data[i+1] = c.G
			data[i+2] = c.B
		}
	}

	return tensor.New(
		tensor.WithShape(height, width, 3),
		tensor.WithBacking(data),
	)
}
