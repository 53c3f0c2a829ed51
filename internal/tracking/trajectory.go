// Package tracking turns a stream of per-frame centroids into stroke segments.
package tracking

import (
	"errors"
	"image"

	"github.com/ironsheep/airpaint/internal/imaging"
)

// ErrNoTrajectory is returned when an operation needs the two most recent
// centroids to be present and they are not.
var ErrNoTrajectory = errors.New("trajectory has fewer than two tracked points")

// State is the fill level of the trajectory history.
type State int

const (
	NoHistory State = iota
	OnePoint
	TwoPoints
)

func (s State) String() string {
	switch s {
	case NoHistory:
		return "no-history"
	case OnePoint:
		return "one-point"
	case TwoPoints:
		return "two-points"
	}
	return "unknown"
}

// Segment is a straight stroke between two tracked positions.
type Segment struct {
	From image.Point
	To   image.Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return imaging.Distance(s.From, s.To)
}

// Trajectory keeps the two most recent centroids and decides when the pen
// moved far enough, continuously, to draw a segment.
//
// History is a fixed two-slot buffer, so it can never grow past two entries.
// Absent centroids are recorded like any other so that a contact break is
// visible to the next Push: a segment is produced only when both slots hold
// present centroids. Every other pair (absent then present, present then
// absent, absent then absent) produces nothing, which keeps a stroke from
// snapping across the frame when the pen briefly leaves view.
//
// The zero value is ready to use.
type Trajectory struct {
	// MaxJump, when positive, suppresses segments longer than this many
	// pixels. The newer point is still recorded so the stroke resumes from
	// it on the next frame.
	MaxJump float64

	prev, last Centroid
	n          int
}

// Push records a new centroid and reports the segment to draw, if any.
func (t *Trajectory) Push(c Centroid) (Segment, bool) {
	t.prev, t.last = t.last, c
	if t.n < 2 {
		t.n++
	}
	if t.n < 2 {
		return Segment{}, false
	}

	seg, ok := t.segment()
	if !ok {
		return Segment{}, false
	}
	if t.MaxJump > 0 && seg.Length() > t.MaxJump {
		return Segment{}, false
	}
	return seg, true
}

// Span returns the segment between the two most recent centroids, ignoring
// MaxJump. Shapes are drawn from it.
//
// Returns ErrNoTrajectory unless both entries are present.
func (t *Trajectory) Span() (Segment, error) {
	if t.n < 2 {
		return Segment{}, ErrNoTrajectory
	}
	seg, ok := t.segment()
	if !ok {
		return Segment{}, ErrNoTrajectory
	}
	return seg, nil
}

func (t *Trajectory) segment() (Segment, bool) {
	from, ok1 := t.prev.Point()
	to, ok2 := t.last.Point()
	if !ok1 || !ok2 {
		return Segment{}, false
	}
	return Segment{From: from, To: to}, true
}

// Last returns the most recent centroid, absent if nothing was pushed yet.
func (t *Trajectory) Last() Centroid {
	if t.n == 0 {
		return Absent()
	}
	return t.last
}

// History returns the recorded centroids, oldest first. Its length is the
// number of entries held, at most two.
func (t *Trajectory) History() []Centroid {
	switch t.n {
	case 0:
		return nil
	case 1:
		return []Centroid{t.last}
	}
	return []Centroid{t.prev, t.last}
}

// State returns the history fill level.
func (t *Trajectory) State() State {
	return State(t.n)
}

// Reset empties the history. MaxJump is kept.
func (t *Trajectory) Reset() {
	t.prev, t.last = Centroid{}, Centroid{}
	t.n = 0
}
