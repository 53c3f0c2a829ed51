package imaging

import (
	"image"
	"image/color"
)

// Mask is a binary image with the same dimensions as the frame it was
// computed from. Cells are stored in row-major order: the cell at (x, y)
// lives at index y*Width + x.
type Mask struct {
	Width  int
	Height int
	Cells  []bool
}

// NewMask returns an all-false mask of the given size.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		Width:  width,
		Height: height,
		Cells:  make([]bool, width*height),
	}
}

// Bounds returns the mask rectangle, always anchored at (0, 0).
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// At reports the cell value at (x, y). Out-of-range coordinates read as false.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return false
	}
	return m.Cells[y*m.Width+x]
}

// Set assigns the cell at (x, y). Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return
	}
	m.Cells[y*m.Width+x] = v
}

// Count returns the number of true cells.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Cells {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether both masks have the same size and cells.
func (m *Mask) Equal(o *Mask) bool {
	if m.Width != o.Width || m.Height != o.Height {
		return false
	}
	for i, v := range m.Cells {
		if o.Cells[i] != v {
			return false
		}
	}
	return true
}

// Gray renders the mask as a grayscale image: 255 for true cells, 0 otherwise.
// This is the form handed to the display sink.
func (m *Mask) Gray() *image.Gray {
	img := image.NewGray(m.Bounds())
	for i, v := range m.Cells {
		if v {
			img.Pix[i] = 255
		}
	}
	return img
}

// MaskFromGray builds a mask from a grayscale image, treating any non-zero
// pixel as true.
func MaskFromGray(img *image.Gray) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if img.GrayAt(b.Min.X+x, b.Min.Y+y) != (color.Gray{}) {
				m.Cells[y*m.Width+x] = true
			}
		}
	}
	return m
}
