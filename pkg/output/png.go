package output

import (
	"fmt"
	"image/png"
	"io"

	"github.com/WillDeJs/ray-tracing/pkg/renderer"
)

// WritePNG encodes frame as a PNG image
func WritePNG(w io.Writer, frame *renderer.Frame) error {
	if err := png.Encode(w, frame); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}
