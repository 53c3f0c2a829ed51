package capture

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/ironsheep/airpaint/internal/imaging"
)

var (
	// ErrCaptureFailed means a camera read produced no frame. The session
	// treats it as fatal.
	ErrCaptureFailed = errors.New("capture failed")

	// ErrClosed is returned by reads on a closed camera.
	ErrClosed = errors.New("camera closed")

	// ErrNoCamera is returned when the binary was built without OpenCV.
	ErrNoCamera = errors.New("camera support not compiled in (build with cgo and OpenCV)")
)

// Camera yields one frame per call. Frames are owned by the caller.
type Camera interface {
	ReadFrame() (*image.NRGBA, error)
	Close() error
}

// Views are the images shown after each iteration.
type Views struct {
	Camera image.Image // camera frame with the centroid marker
	Mask   image.Image // raw threshold mask
	Blob   image.Image // mask restricted to the selected blob
	Canvas image.Image // drawing so far
}

// Replay is a Camera backed by a directory of images.
type Replay struct {
	mu     sync.Mutex
	seq    *imaging.Sequence
	dir    string
	closed bool
}

// OpenReplay opens the images in dir. With loop set the sequence restarts
// instead of ending.
func OpenReplay(dir string, loop bool) (*Replay, error) {
	seq, err := imaging.OpenSequence(dir, loop)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	return &Replay{seq: seq, dir: dir}, nil
}

// Frames returns the number of images in the sequence.
func (r *Replay) Frames() int {
	return r.seq.Len()
}

// ReadFrame returns the next image. The end of a non-looping sequence is
// reported as ErrCaptureFailed wrapping io.EOF.
func (r *Replay) ReadFrame() (*image.NRGBA, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, ErrClosed
	}
	frame, err := r.seq.Next()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: end of replay: %w", ErrCaptureFailed, r.dir, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}
	return frame, nil
}

// Close releases the sequence. Further reads return ErrClosed.
func (r *Replay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
