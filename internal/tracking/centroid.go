package tracking

import (
	"fmt"
	"image"
)

// Centroid is an optional pixel position: either the centre of the tracked
// blob in one frame, or absent when no blob was found.
//
// The zero value is absent. Absence is a separate state and never encoded
// as a magic coordinate, so any point, including negative ones, is a valid
// present centroid.
type Centroid struct {
	pt      image.Point
	present bool
}

// At returns a present centroid at p.
func At(p image.Point) Centroid {
	return Centroid{pt: p, present: true}
}

// Absent returns the "no blob this frame" centroid.
func Absent() Centroid {
	return Centroid{}
}

// Present reports whether the centroid holds a position.
func (c Centroid) Present() bool {
	return c.present
}

// Point returns the position and whether it is present.
func (c Centroid) Point() (image.Point, bool) {
	return c.pt, c.present
}

// String implements fmt.Stringer.
func (c Centroid) String() string {
	if !c.present {
		return "absent"
	}
	return fmt.Sprintf("(%d,%d)", c.pt.X, c.pt.Y)
}
