package capture

import "image"

// Window titles, in Views order.
const (
	CameraWindow = "Camera"
	MaskWindow   = "Mask"
	CanvasWindow = "Drawing"
	BlobWindow   = "Biggest blob"
)

// Gap is the horizontal space left between the left and right columns.
const Gap = 200

// Placement returns the top-left screen position of each window for
// frames of the given size. The camera and mask stack in the left column;
// the drawing and blob stack in the right one.
func Placement(frame image.Point) map[string]image.Point {
	left := 20
	right := frame.X + Gap
	return map[string]image.Point{
		CameraWindow: {X: left, Y: 0},
		MaskWindow:   {X: left, Y: frame.Y},
		CanvasWindow: {X: right, Y: 0},
		BlobWindow:   {X: right, Y: frame.Y},
	}
}

type pane struct {
	name string
	img  image.Image
}

// panes pairs each window title with its view image.
func panes(v Views) []pane {
	return []pane{
		{CameraWindow, v.Camera},
		{MaskWindow, v.Mask},
		{CanvasWindow, v.Canvas},
		{BlobWindow, v.Blob},
	}
}
