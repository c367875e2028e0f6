package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/core"
)

// BytesPerPixel is the packed size of one RGB pixel
const BytesPerPixel = 3

// Framebuffer is a row-major RGB raster with 3 bytes per pixel and no padding
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	if width > math.MaxInt32/BytesPerPixel/height {
		return nil, fmt.Errorf("framebuffer size %dx%d is too large", width, height)
	}

	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*BytesPerPixel),
	}, nil
}

// offset returns the index of the first byte of pixel (x, y)
func (fb *Framebuffer) offset(x, y int) int {
	return (x + y*fb.Width) * BytesPerPixel
}

// SetPixel stores a color given in [0,1] units, scaling to bytes and clamping
// each channel to [0,255] independently
func (fb *Framebuffer) SetPixel(x, y int, c core.Vec3) {
	i := fb.offset(x, y)
	fb.Pix[i+0] = channelToByte(c.X)
	fb.Pix[i+1] = channelToByte(c.Y)
	fb.Pix[i+2] = channelToByte(c.Z)
}

// At returns the stored RGB bytes of pixel (x, y)
func (fb *Framebuffer) At(x, y int) (r, g, b uint8) {
	i := fb.offset(x, y)
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// ToImage converts the framebuffer to an opaque RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			r, g, b := fb.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// channelToByte scales by 255 and truncates; NaN maps to 0
func channelToByte(v float64) uint8 {
	scaled := v * 255.0
	if !(scaled > 0) {
		return 0
	}
	if scaled >= 255.0 {
		return 255
	}
	return uint8(scaled)
}
