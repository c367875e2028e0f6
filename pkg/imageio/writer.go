package imageio

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/renderer"
)

// Supported output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// SupportedFormat reports whether format names an output encoding. Names are
// matched exactly, so "PNG" is not a supported format.
func SupportedFormat(format string) bool {
	return format == FormatPPM || format == FormatPNG
}

// WritePPM writes the framebuffer as a binary PPM (P6) image
func WritePPM(w io.Writer, fb *renderer.Framebuffer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6 %d %d %d\n", fb.Width, fb.Height, 255); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}
	if _, err := bw.Write(fb.Pix); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM pixels: %w", err)
	}
	return nil
}

// WritePNG writes the framebuffer as a PNG image
func WritePNG(w io.Writer, fb *renderer.Framebuffer) error {
	if err := png.Encode(w, fb.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Write encodes the framebuffer in the named format
func Write(w io.Writer, format string, fb *renderer.Framebuffer) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, fb)
	case FormatPNG:
		return WritePNG(w, fb)
	default:
		return fmt.Errorf("unsupported image format %q (supported: ppm, png)", format)
	}
}

// ContentType returns the MIME type for a supported format
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	default:
		return "image/x-portable-pixmap"
	}
}

// SaveFramebuffer writes the framebuffer to a file in the given format
func SaveFramebuffer(filename, format string, fb *renderer.Framebuffer) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close image file: %w", closeErr)
		}
	}()

	return Write(file, format, fb)
}
