package imaging

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Common pen colors.
var (
	Red   = RGBColor{R: 255}
	Green = RGBColor{G: 255}
	Blue  = RGBColor{B: 255}
	White = RGBColor{R: 255, G: 255, B: 255}
)

// RGBA returns the color as an opaque color.RGBA.
func (c RGBColor) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color as "#rrggbb".
func (c RGBColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// ParseHexColor parses a "#RRGGBB" or "#RGB" string into an RGBColor.
//
// Parameters:
//   - s: The hex string. The leading '#' is required.
//
// Returns:
//   - RGBColor: The parsed color.
//   - error: Non-nil if the string is not a valid hex color.
func ParseHexColor(s string) (RGBColor, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGBColor{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBColor{R: r, G: g, B: b}, nil
}

// ChannelRange is an inclusive [Min, Max] bound on one 8-bit color channel.
type ChannelRange struct {
	Min uint8 `json:"min"`
	Max uint8 `json:"max"`
}

// Contains reports whether v lies within the range, bounds included.
func (r ChannelRange) Contains(v uint8) bool {
	return v >= r.Min && v <= r.Max
}

// Thresholds holds the per-channel bounds used to segment a frame.
//
// A pixel is "in range" when every channel lies inside its range. The
// Thresholds value is read-only for the segmenter; it is loaded once at
// startup and never mutated by the pipeline.
type Thresholds struct {
	R ChannelRange `json:"R"`
	G ChannelRange `json:"G"`
	B ChannelRange `json:"B"`
}

// Contains reports whether the given pixel lies inside all three ranges.
func (t Thresholds) Contains(r, g, b uint8) bool {
	return t.R.Contains(r) && t.G.Contains(g) && t.B.Contains(b)
}
