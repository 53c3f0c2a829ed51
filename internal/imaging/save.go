package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/anthonynsimon/bild/imgio"
)

// drawingTimeLayout matches the ctime(3) format, e.g. "Mon Jan  2 15:04:05 2006".
const drawingTimeLayout = "Mon Jan _2 15:04:05 2006"

// DrawingFileName returns the file name used for a saved drawing taken at t.
func DrawingFileName(t time.Time) string {
	return "Drawing " + t.Format(drawingTimeLayout) + ".png"
}

// Saver writes canvas snapshots as PNG files into a directory.
type Saver struct {
	// Dir is the output directory. Empty means the working directory.
	Dir string

	// Now returns the timestamp used for file names. Defaults to time.Now.
	Now func() time.Time
}

// Save encodes img as PNG under a timestamp-derived name.
//
// Returns:
//   - string: The path that was written.
//   - error: Non-nil if the directory cannot be created or encoding fails.
func (s *Saver) Save(img image.Image) (string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(dir, DrawingFileName(now()))
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("failed to save drawing: %w", err)
	}
	return path, nil
}
