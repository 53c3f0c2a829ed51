// Package session runs the per-frame pen tracking loop.
//
// One iteration reads a frame, segments it by color, keeps the biggest
// blob, feeds its centroid to the trajectory and strokes the resulting
// segment onto the canvas. After the views are shown, at most one pending
// command is dispatched. All state lives on the Session and is touched
// only by the goroutine calling Step, Dispatch or Run.
package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"

	"github.com/ironsheep/airpaint/internal/canvas"
	"github.com/ironsheep/airpaint/internal/capture"
	"github.com/ironsheep/airpaint/internal/command"
	"github.com/ironsheep/airpaint/internal/detection"
	"github.com/ironsheep/airpaint/internal/imaging"
	"github.com/ironsheep/airpaint/internal/tracking"
)

var (
	// ErrNoCanvas is returned by operations that need a canvas before the
	// first frame has been read.
	ErrNoCanvas = errors.New("no frame read yet")

	// ErrNoStore is returned by Save when no persister is configured.
	ErrNoStore = errors.New("no persister configured")
)

// Display receives the views after every iteration.
type Display interface {
	Show(capture.Views) error
}

// Commands yields pending user commands without blocking.
type Commands interface {
	Poll() command.Command
}

// Persister writes a canvas image and returns where it went.
type Persister interface {
	Save(img image.Image) (string, error)
}

// Options configures a Session. Camera is required; the other
// collaborators may be nil.
type Options struct {
	Camera   capture.Camera
	Display  Display
	Commands Commands
	Store    Persister
	Logger   *slog.Logger

	Thresholds imaging.Thresholds
	Prepare    imaging.PrepareOptions
	Pen        canvas.Pen

	// MaxJump suppresses segments longer than this many pixels. Zero
	// disables the check.
	MaxJump float64
}

// Result describes one completed iteration.
type Result struct {
	Frame     int
	Selection detection.Selection
	Segment   tracking.Segment
	Drew      bool
	Views     capture.Views
}

// Session owns the pen, the canvas and the trajectory for one run.
type Session struct {
	cam     capture.Camera
	display Display
	cmds    Commands
	store   Persister
	logger  *slog.Logger

	thresholds imaging.Thresholds
	prepare    imaging.PrepareOptions

	pen    canvas.Pen
	canvas *canvas.Canvas
	traj   tracking.Trajectory
	size   image.Point
	frames int
}

// New creates a session. The canvas is sized from the first frame.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	pen := opts.Pen
	if pen == (canvas.Pen{}) {
		pen = canvas.DefaultPen()
	}
	pen.Size = canvas.ClampSize(pen.Size)

	return &Session{
		cam:        opts.Camera,
		display:    opts.Display,
		cmds:       opts.Commands,
		store:      opts.Store,
		logger:     logger,
		thresholds: opts.Thresholds,
		prepare:    opts.Prepare,
		pen:        pen,
		traj:       tracking.Trajectory{MaxJump: opts.MaxJump},
	}
}

// Pen returns the current pen.
func (s *Session) Pen() canvas.Pen {
	return s.pen
}

// Trajectory returns the current trajectory state.
func (s *Session) Trajectory() *tracking.Trajectory {
	return &s.traj
}

// Frames returns the number of frames processed.
func (s *Session) Frames() int {
	return s.frames
}

// Snapshot returns a copy of the canvas, or nil before the first frame.
func (s *Session) Snapshot() *image.RGBA {
	if s.canvas == nil {
		return nil
	}
	return s.canvas.Snapshot()
}

// Step runs one iteration without showing or dispatching anything. A
// camera failure or a change of frame size is returned as an error
// wrapping capture.ErrCaptureFailed.
func (s *Session) Step() (Result, error) {
	raw, err := s.cam.ReadFrame()
	if err != nil {
		if errors.Is(err, capture.ErrCaptureFailed) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %w", capture.ErrCaptureFailed, err)
	}

	frame := imaging.Prepare(raw, s.prepare)
	if err := s.ensureCanvas(frame.Bounds().Size()); err != nil {
		return Result{}, err
	}
	s.frames++

	mask := imaging.Segment(frame, s.thresholds)
	sel := detection.Select(mask)
	centroid := sel.Centroid()

	res := Result{Frame: s.frames, Selection: sel}
	seg, draw := s.traj.Push(centroid)
	if draw {
		if err := s.canvas.DrawSegment(seg, s.pen); err != nil {
			return Result{}, err
		}
		res.Segment, res.Drew = seg, true
	}

	s.logger.Debug("frame",
		"n", s.frames,
		"centroid", centroid.String(),
		"regions", sel.Regions,
		"area", sel.Blob.Area,
		"drew", draw,
	)

	marked, err := canvas.MarkCentroid(frame, centroid)
	if err != nil {
		return Result{}, fmt.Errorf("mark centroid: %w", err)
	}
	res.Views = capture.Views{
		Camera: marked,
		Mask:   mask.Gray(),
		Blob:   sel.Mask.Gray(),
		Canvas: s.canvas.Snapshot(),
	}
	return res, nil
}

func (s *Session) ensureCanvas(size image.Point) error {
	if s.canvas == nil {
		s.size = size
		s.canvas = canvas.New(size.X, size.Y)
		s.logger.Info("session started", "width", size.X, "height", size.Y, "pen", s.pen.String())
		return nil
	}
	if size != s.size {
		return fmt.Errorf("%w: frame size changed from %v to %v", capture.ErrCaptureFailed, s.size, size)
	}
	return nil
}

// Run loops until ctx is cancelled, a quit command arrives or a fatal
// error occurs. Cancellation and quit take effect at the end of the
// current iteration and return nil.
func (s *Session) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled", "frames", s.frames)
			return nil
		default:
		}

		res, err := s.Step()
		if err != nil {
			return err
		}

		if s.display != nil {
			if err := s.display.Show(res.Views); err != nil {
				return fmt.Errorf("display: %w", err)
			}
		}

		if s.cmds != nil {
			if quit := s.Dispatch(s.cmds.Poll()); quit {
				return nil
			}
		}
	}
}

// Close releases the canvas. The camera stays owned by the caller.
func (s *Session) Close() error {
	if s.canvas == nil {
		return nil
	}
	err := s.canvas.Close()
	s.canvas = nil
	return err
}
