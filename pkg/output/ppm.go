package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/WillDeJs/ray-tracing/pkg/renderer"
)

// WritePPM writes frame as a plain-text (P3) portable pixmap, one pixel per
// line from the top row down
func WritePPM(w io.Writer, frame *renderer.Frame) error {
	buffered := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(buffered, "P3\n%d %d\n255\n", frame.Width, frame.Height); err != nil {
		return fmt.Errorf("error writing PPM header: %w", err)
	}
	for _, pixel := range frame.Pixels {
		if _, err := fmt.Fprintln(buffered, pixel.String()); err != nil {
			return fmt.Errorf("error writing PPM pixels: %w", err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return fmt.Errorf("error writing PPM: %w", err)
	}
	return nil
}
