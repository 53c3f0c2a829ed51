package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"
)

// ToFrame converts any image into the frame representation used by the
// pipeline: an *image.NRGBA anchored at (0, 0).
//
// If img already satisfies both conditions it is returned as-is; otherwise
// a copy is made.
func ToFrame(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}

// Mirror flips a frame horizontally so the preview behaves like a mirror
// for the person holding the pen.
func Mirror(frame image.Image) *image.NRGBA {
	return imaging.FlipH(frame)
}

// PrepareOptions controls the conditioning applied to each camera frame
// before it is segmented.
type PrepareOptions struct {
	// Mirror flips the frame horizontally.
	Mirror bool

	// BlurRadius is the Gaussian blur radius in pixels. Zero disables the blur.
	BlurRadius float64
}

// Prepare applies the configured conditioning to a raw camera frame.
//
// The blur runs before the flip; both are optional. The returned frame is
// always a fresh *image.NRGBA, so the caller may draw on it without
// touching the camera buffer.
func Prepare(frame image.Image, opts PrepareOptions) *image.NRGBA {
	img := frame
	if opts.BlurRadius > 0 {
		img = blur.Gaussian(img, opts.BlurRadius)
	}
	if opts.Mirror {
		return Mirror(img)
	}
	return imaging.Clone(img)
}
