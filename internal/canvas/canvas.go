// Package canvas holds the persistent drawing surface and the pen that
// strokes it.
//
// A Canvas survives across frames: every accepted trajectory segment is
// stroked onto it and stays there until Clear is called. Rendering is done
// by the gg software rasterizer with anti-aliasing and round caps, so
// consecutive segments join into a smooth freehand line.
//
// Pixel (x, y) is addressed at its centre, (x+0.5, y+0.5), so a segment
// between two integer centroids runs through the middle of both pixels.
package canvas

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/ironsheep/airpaint/internal/imaging"
	"github.com/ironsheep/airpaint/internal/tracking"
)

// Canvas is a frame-sized whiteboard. It is not safe for concurrent use;
// the session loop is its only writer.
type Canvas struct {
	dc         *gg.Context
	width      int
	height     int
	background gg.RGBA
}

// New creates a blank (all white) canvas of the given size.
func New(width, height int) *Canvas {
	c := &Canvas{
		dc:         gg.NewContext(width, height),
		width:      width,
		height:     height,
		background: gg.FromColor(imaging.White.RGBA()),
	}
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.Clear()
	return c
}

// Bounds returns the canvas rectangle, anchored at (0, 0).
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// Clear resets every pixel to the blank background.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(c.background)
}

// DrawSegment strokes a straight line between the segment endpoints with
// the pen's color and width.
func (c *Canvas) DrawSegment(seg tracking.Segment, pen Pen) error {
	c.apply(pen)
	c.dc.DrawLine(center(seg.From.X), center(seg.From.Y), center(seg.To.X), center(seg.To.Y))
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke segment: %w", err)
	}
	return nil
}

// DrawCircle strokes a circle outline.
//
// Parameters:
//   - at: Centre pixel.
//   - radius: Radius in pixels. Zero or negative radii draw nothing.
//   - pen: Stroke color and width.
func (c *Canvas) DrawCircle(at image.Point, radius float64, pen Pen) error {
	if radius <= 0 {
		return nil
	}
	c.apply(pen)
	c.dc.DrawCircle(center(at.X), center(at.Y), radius)
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke circle: %w", err)
	}
	return nil
}

// DrawRectangle strokes the outline of r, whose corners are pixel centres.
// An empty rectangle draws nothing.
func (c *Canvas) DrawRectangle(r image.Rectangle, pen Pen) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	c.apply(pen)
	c.dc.DrawRectangle(center(r.Min.X), center(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("failed to stroke rectangle: %w", err)
	}
	return nil
}

// CircleThrough draws a circle centred on the older trajectory point that
// passes through the newer one.
func (c *Canvas) CircleThrough(seg tracking.Segment, pen Pen) error {
	return c.DrawCircle(seg.From, seg.Length(), pen)
}

// RectangleSpanning draws a rectangle with the two trajectory points as
// opposite corners.
func (c *Canvas) RectangleSpanning(seg tracking.Segment, pen Pen) error {
	return c.DrawRectangle(imaging.Span(seg.From, seg.To), pen)
}

// Snapshot returns a copy of the current canvas pixels. Later drawing does
// not affect the returned image.
func (c *Canvas) Snapshot() *image.RGBA {
	return toRGBA(c.dc.Image())
}

// Close releases renderer resources. The canvas must not be used afterwards.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

func (c *Canvas) apply(pen Pen) {
	c.dc.SetColor(pen.Color.RGBA())
	c.dc.SetLineWidth(float64(ClampSize(pen.Size)))
}

// toRGBA returns img as a zero-origin *image.RGBA, copying only when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

func center(v int) float64 {
	return float64(v) + 0.5
}
