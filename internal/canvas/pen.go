package canvas

import (
	"fmt"

	"github.com/ironsheep/airpaint/internal/imaging"
)

// Stroke width limits, in pixels.
const (
	MinSize     = 1
	MaxSize     = 30
	DefaultSize = 10
)

// Pen is the current stroke style. It is owned by the session loop and
// changed only by command dispatch; the renderer reads it.
type Pen struct {
	Color imaging.RGBColor `json:"color"`
	Size  int              `json:"size"`
}

// DefaultPen returns a 10 px red pen.
func DefaultPen() Pen {
	return Pen{Color: imaging.Red, Size: DefaultSize}
}

// ClampSize limits a stroke width to [MinSize, MaxSize].
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}
	if size > MaxSize {
		return MaxSize
	}
	return size
}

// Grow widens the pen by one pixel. It reports false, leaving the size
// unchanged, when the pen is already at MaxSize.
func (p *Pen) Grow() bool {
	if p.Size >= MaxSize {
		p.Size = MaxSize
		return false
	}
	p.Size = ClampSize(p.Size + 1)
	return true
}

// Shrink narrows the pen by one pixel. It reports false, leaving the size
// unchanged, when the pen is already at MinSize.
func (p *Pen) Shrink() bool {
	if p.Size <= MinSize {
		p.Size = MinSize
		return false
	}
	p.Size = ClampSize(p.Size - 1)
	return true
}

// String implements fmt.Stringer.
func (p Pen) String() string {
	return fmt.Sprintf("%s %dpx", p.Color.Hex(), p.Size)
}
