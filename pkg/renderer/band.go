package renderer

import (
	"image"
)

// Band is a horizontal strip of full-width rows rendered by a single task
type Band struct {
	ID     int
	Bounds image.Rectangle // Pixel bounds (0,y0,width,y1)
}

// NewBand creates a new band with the specified bounds
func NewBand(id int, bounds image.Rectangle) *Band {
	return &Band{
		ID:     id,
		Bounds: bounds,
	}
}

// NewBandGrid splits the image into contiguous row bands, one per worker.
// Band heights differ by at most one row and there are never more bands than
// rows, so every band is non-empty.
func NewBandGrid(width, height, numBands int) []*Band {
	if width <= 0 || height <= 0 || numBands <= 0 {
		return nil
	}
	numBands = min(numBands, height)

	baseRows := height / numBands
	extraRows := height % numBands

	bands := make([]*Band, 0, numBands)
	y0 := 0
	for id := 0; id < numBands; id++ {
		rows := baseRows
		if id < extraRows {
			rows++
		}
		y1 := y0 + rows

		bands = append(bands, NewBand(id, image.Rect(0, y0, width, y1)))
		y0 = y1
	}

	return bands
}
