package imaging

import "image"

// Segment thresholds a frame into a binary mask.
//
// Parameters:
//   - frame: The source frame. Any origin is accepted; the mask is always
//     anchored at (0, 0) with the frame's width and height.
//   - t: Per-channel inclusive bounds.
//
// Returns a mask where a cell is true iff every channel of the pixel at the
// same position lies within its bound. Alpha is ignored.
//
// Segment is a pure function; neither argument is modified.
func Segment(frame *image.NRGBA, t Thresholds) *Mask {
	b := frame.Bounds()
	m := NewMask(b.Dx(), b.Dy())

	for y := 0; y < m.Height; y++ {
		off := frame.PixOffset(b.Min.X, b.Min.Y+y)
		row := y * m.Width
		for x := 0; x < m.Width; x++ {
			p := frame.Pix[off : off+4 : off+4]
			if t.Contains(p[0], p[1], p[2]) {
				m.Cells[row+x] = true
			}
			off += 4
		}
	}

	return m
}
