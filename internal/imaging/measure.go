package imaging

import (
	"image"
	"math"
)

// Distance returns the Euclidean distance between two pixel coordinates.
func Distance(p, q image.Point) float64 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Span returns the axis-aligned rectangle with p and q as opposite corners.
// The result is canonical (Min <= Max) regardless of argument order.
func Span(p, q image.Point) image.Rectangle {
	return image.Rectangle{Min: p, Max: q}.Canon()
}
