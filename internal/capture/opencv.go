//go:build cgo

package capture

import (
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"github.com/ironsheep/airpaint/internal/command"
)

// Device is a live webcam.
type Device struct {
	mu     sync.Mutex
	id     int
	vc     *gocv.VideoCapture
	mat    gocv.Mat
	closed bool
}

// OpenCamera opens the webcam with the given device index.
func OpenCamera(id int) (*Device, error) {
	vc, err := gocv.VideoCaptureDevice(id)
	if err != nil {
		return nil, fmt.Errorf("%w: open device %d: %w", ErrCaptureFailed, id, err)
	}
	return &Device{id: id, vc: vc, mat: gocv.NewMat()}, nil
}

// ReadFrame grabs the next frame. It blocks until the driver delivers one.
func (d *Device) ReadFrame() (*image.NRGBA, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrClosed
	}
	if ok := d.vc.Read(&d.mat); !ok || d.mat.Empty() {
		return nil, fmt.Errorf("%w: device %d returned no frame", ErrCaptureFailed, d.id)
	}
	return matToFrame(d.mat)
}

// Close releases the device.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	if err := d.mat.Close(); err != nil {
		return err
	}
	return d.vc.Close()
}

// matToFrame converts an 8-bit BGR Mat into an NRGBA frame.
func matToFrame(mat gocv.Mat) (*image.NRGBA, error) {
	if mat.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("%w: unsupported mat type %v", ErrCaptureFailed, mat.Type())
	}
	h, w := mat.Rows(), mat.Cols()
	src := mat.ToBytes()
	if len(src) < w*h*3 {
		return nil, fmt.Errorf("%w: short frame buffer", ErrCaptureFailed)
	}

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := src[y*w*3 : (y+1)*w*3]
		dst := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			// OpenCV stores BGR
			dst[x*4+0] = row[x*3+2]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+0]
			dst[x*4+3] = 255
		}
	}
	return img, nil
}

// imageToMat converts any image into an 8-bit BGR Mat for display.
func imageToMat(img image.Image) (gocv.Mat, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]byte, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			data[i+0] = uint8(bl >> 8)
			data[i+1] = uint8(g >> 8)
			data[i+2] = uint8(r >> 8)
		}
	}
	return gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC3, data)
}

// Windows shows the four views in OpenCV windows and collects key presses.
type Windows struct {
	wins   map[string]*gocv.Window
	placed bool
	keys   []int
}

// OpenWindows creates the display windows.
func OpenWindows() (*Windows, error) {
	w := &Windows{wins: make(map[string]*gocv.Window)}
	for _, name := range []string{CameraWindow, MaskWindow, CanvasWindow, BlobWindow} {
		w.wins[name] = gocv.NewWindow(name)
	}
	return w, nil
}

// Show draws every non-nil view, positions the windows on the first call
// and polls the keyboard once.
func (w *Windows) Show(v Views) error {
	if !w.placed && v.Camera != nil {
		pos := Placement(v.Camera.Bounds().Size())
		for name, win := range w.wins {
			p := pos[name]
			win.MoveWindow(p.X, p.Y)
		}
		w.placed = true
	}

	for _, p := range panes(v) {
		if p.img == nil {
			continue
		}
		mat, err := imageToMat(p.img)
		if err != nil {
			return fmt.Errorf("show %s: %w", p.name, err)
		}
		w.wins[p.name].IMShow(mat)
		mat.Close()
	}

	if key := w.wins[CameraWindow].WaitKey(1); key >= 0 {
		w.keys = append(w.keys, key)
	}
	return nil
}

// Poll returns the oldest unhandled key press as a command.
func (w *Windows) Poll() command.Command {
	for len(w.keys) > 0 {
		key := w.keys[0]
		w.keys = w.keys[1:]
		if cmd := command.FromKey(key); cmd != command.None {
			return cmd
		}
	}
	return command.None
}

// Close destroys the windows.
func (w *Windows) Close() error {
	var first error
	for _, win := range w.wins {
		if err := win.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
