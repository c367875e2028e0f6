package renderer

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int     // Total number of pixels rendered
	TotalBounces   int     // Total number of surface bounces traced
	AverageBounces float64 // Average bounces per pixel
	MaxBouncesUsed int     // Maximum bounces used by any pixel
	MissedPixels   int     // Pixels whose primary ray hit nothing
	Bands          int     // Number of bands the image was split into
}

// addPixel updates the statistics with data from a single pixel
func (rs *RenderStats) addPixel(bounces int) {
	rs.TotalPixels++
	rs.TotalBounces += bounces
	rs.MaxBouncesUsed = max(rs.MaxBouncesUsed, bounces)
	if bounces == 0 {
		rs.MissedPixels++
	}
}

// merge folds the statistics of another band into rs
func (rs *RenderStats) merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalBounces += other.TotalBounces
	rs.MaxBouncesUsed = max(rs.MaxBouncesUsed, other.MaxBouncesUsed)
	rs.MissedPixels += other.MissedPixels
	rs.Bands++
}

// finalize calculates derived statistics after all pixels are rendered
func (rs *RenderStats) finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageBounces = float64(rs.TotalBounces) / float64(rs.TotalPixels)
	}
}

// CalculateAverageLuminance returns the mean perceptual luminance of the
// framebuffer in [0,1], using Rec. 709 weights
func CalculateAverageLuminance(fb *Framebuffer) float64 {
	if fb == nil || len(fb.Pix) == 0 {
		return 0
	}

	total := 0.0
	for i := 0; i < len(fb.Pix); i += BytesPerPixel {
		r := float64(fb.Pix[i]) / 255.0
		g := float64(fb.Pix[i+1]) / 255.0
		b := float64(fb.Pix[i+2]) / 255.0
		total += 0.2126*r + 0.7152*g + 0.0722*b
	}
	return total / float64(fb.Width*fb.Height)
}
