package canvas

import (
	"image"
	"image/draw"

	"github.com/gogpu/gg"

	"github.com/ironsheep/airpaint/internal/imaging"
	"github.com/ironsheep/airpaint/internal/tracking"
)

// MarkerRadius is the radius of the dot drawn over the tracked centroid.
const MarkerRadius = 10

// MarkCentroid returns a copy of frame with a filled red dot over the
// centroid. An absent centroid yields an unmarked copy.
func MarkCentroid(frame image.Image, c tracking.Centroid) (*image.RGBA, error) {
	p, ok := c.Point()
	if !ok {
		// Always copy so callers never alias the camera frame.
		b := frame.Bounds()
		out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(out, out.Bounds(), frame, b.Min, draw.Src)
		return out, nil
	}

	dc := gg.NewContextForImage(frame)
	defer dc.Close()

	dc.SetColor(imaging.Red.RGBA())
	dc.DrawCircle(center(p.X), center(p.Y), MarkerRadius)
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	return toRGBA(dc.Image()), nil
}
