package detection

import (
	"image"

	"github.com/ironsheep/airpaint/internal/imaging"
	"github.com/ironsheep/airpaint/internal/tracking"
)

// Blob is one connected region of true mask cells.
type Blob struct {
	// Label is the region index in discovery order, starting at 1.
	// Label 0 is reserved for background and never appears in a Blob.
	Label int `json:"label"`

	// Area is the number of cells in the region. Always > 0.
	Area int `json:"area"`

	// Centroid is the mean of the member coordinates, truncated toward zero.
	Centroid image.Point `json:"centroid"`

	// Bounds is the bounding box of the region (Max exclusive).
	Bounds image.Rectangle `json:"bounds"`
}

// Labels is the connected-component decomposition of a mask.
type Labels struct {
	// Width and Height match the labeled mask.
	Width  int
	Height int

	// Index holds the region label of every cell in row-major order,
	// 0 for background.
	Index []int32

	// Blobs lists every region; Blobs[i].Label == i+1.
	Blobs []Blob
}

// accumulator collects running sums for one region while it is filled.
type accumulator struct {
	sumX, sumY int64
	count      int
	minX, minY int
	maxX, maxY int
}

// Label computes the 8-connected components of a mask.
//
// Parameters:
//   - m: The binary mask to decompose. It is not modified.
//
// Returns the label grid and the per-region statistics.
//
// # Algorithm
//
// Cells are scanned in raster order (row by row, left to right). Each
// unlabeled true cell starts a new region which is grown by an iterative
// flood fill over its 8 neighbors. Regions are therefore numbered by the
// raster position of their first cell, which makes the result deterministic
// for a given mask. Every cell is inspected exactly once by the scan, so the
// cost is linear in the number of cells.
//
// Area and centroid are accumulated during the fill into (sum-x, sum-y,
// count) so no second pass over the labels is needed.
func Label(m *imaging.Mask) *Labels {
	w, h := m.Width, m.Height
	l := &Labels{
		Width:  w,
		Height: h,
		Index:  make([]int32, w*h),
	}

	var stack []int
	for start, set := range m.Cells {
		if !set || l.Index[start] != 0 {
			continue
		}

		label := int32(len(l.Blobs) + 1)
		acc := accumulator{
			minX: w, minY: h,
			maxX: -1, maxY: -1,
		}

		l.Index[start] = label
		stack = append(stack[:0], start)

		for len(stack) > 0 {
			i := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			x, y := i%w, i/w
			acc.add(x, y)

			// 8-connected neighbors
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= h {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					nx := x + dx
					if (dx == 0 && dy == 0) || nx < 0 || nx >= w {
						continue
					}
					n := ny*w + nx
					if m.Cells[n] && l.Index[n] == 0 {
						l.Index[n] = label
						stack = append(stack, n)
					}
				}
			}
		}

		l.Blobs = append(l.Blobs, acc.blob(int(label)))
	}

	return l
}

func (a *accumulator) add(x, y int) {
	a.sumX += int64(x)
	a.sumY += int64(y)
	a.count++
	if x < a.minX {
		a.minX = x
	}
	if x > a.maxX {
		a.maxX = x
	}
	if y < a.minY {
		a.minY = y
	}
	if y > a.maxY {
		a.maxY = y
	}
}

func (a *accumulator) blob(label int) Blob {
	return Blob{
		Label: label,
		Area:  a.count,
		Centroid: image.Point{
			X: int(a.sumX / int64(a.count)),
			Y: int(a.sumY / int64(a.count)),
		},
		Bounds: image.Rect(a.minX, a.minY, a.maxX+1, a.maxY+1),
	}
}

// Largest returns the region with the greatest area. Ties go to the region
// with the lowest label, i.e. the one discovered first in raster order.
// The boolean is false when the mask had no true cells.
func (l *Labels) Largest() (Blob, bool) {
	if len(l.Blobs) == 0 {
		return Blob{}, false
	}
	best := l.Blobs[0]
	for _, b := range l.Blobs[1:] {
		if b.Area > best.Area {
			best = b
		}
	}
	return best, true
}

// Mask returns a mask holding only the cells of the given region.
// An unknown label yields an empty mask.
func (l *Labels) Mask(label int) *imaging.Mask {
	out := imaging.NewMask(l.Width, l.Height)
	if label <= 0 {
		return out
	}
	want := int32(label)
	for i, v := range l.Index {
		if v == want {
			out.Cells[i] = true
		}
	}
	return out
}

// Selection is the outcome of biggest-blob selection on one mask.
type Selection struct {
	// Mask holds only the selected region, or no cells at all when nothing
	// was found. It has the same size as the input mask.
	Mask *imaging.Mask

	// Blob describes the selected region. Zero when Found is false.
	Blob Blob

	// Found is false when the input mask had no true cells.
	Found bool

	// Regions is the total number of regions in the input mask.
	Regions int
}

// Centroid returns the selected region's centroid, or the absent centroid
// when nothing was found.
func (s Selection) Centroid() tracking.Centroid {
	if !s.Found {
		return tracking.Absent()
	}
	return tracking.At(s.Blob.Centroid)
}

// Select labels the mask and keeps only its largest region.
//
// Parameters:
//   - m: The segmented mask. It is not modified.
//
// Returns a Selection whose Mask is restricted to the largest region. When
// the input has no true cells, Mask is empty and Found is false; this is the
// normal "no blob this frame" outcome, not an error.
func Select(m *imaging.Mask) Selection {
	l := Label(m)
	best, ok := l.Largest()
	if !ok {
		return Selection{Mask: imaging.NewMask(m.Width, m.Height)}
	}
	return Selection{
		Mask:    l.Mask(best.Label),
		Blob:    best,
		Found:   true,
		Regions: len(l.Blobs),
	}
}

// BiggestBlob returns the mask restricted to the largest region together
// with that region's centroid. It is shorthand for Select.
func BiggestBlob(m *imaging.Mask) (*imaging.Mask, tracking.Centroid) {
	s := Select(m)
	return s.Mask, s.Centroid()
}
