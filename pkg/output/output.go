// Package output writes rendered frames to image files.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/WillDeJs/ray-tracing/pkg/renderer"
)

// Supported output formats
const (
	FormatPPM = "ppm"
	FormatPNG = "png"
)

// ErrUnknownFormat is returned for formats other than ppm and png
var ErrUnknownFormat = errors.New("unknown output format")

// FormatFromPath returns the format implied by a file extension
func FormatFromPath(path string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch format {
	case FormatPPM, FormatPNG:
		return format, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// WriteFile writes frame to path in the given format, creating parent directories
func WriteFile(path, format string, frame *renderer.Frame) error {
	if format != FormatPPM && format != FormatPNG {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}

	if format == FormatPPM {
		err = WritePPM(file, frame)
	} else {
		err = WritePNG(file, frame)
	}
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	return err
}
