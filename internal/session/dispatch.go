package session

import (
	"fmt"

	"github.com/ironsheep/airpaint/internal/command"
)

// Dispatch applies one command to the pen or the canvas and reports
// whether the session should stop. Command failures are logged and never
// end the session.
func (s *Session) Dispatch(cmd command.Command) (quit bool) {
	switch cmd {
	case command.None:
		return false

	case command.Quit:
		s.logger.Info("Quitting program")
		return true

	case command.SetRed, command.SetGreen, command.SetBlue:
		col, _ := cmd.Color()
		s.pen.Color = col
		s.logger.Info("Changing color to "+cmd.String(), "color", col.Hex())

	case command.Increase:
		if s.pen.Grow() {
			s.logger.Info(fmt.Sprintf("Increasing pencil size to %d", s.pen.Size))
		} else {
			s.logger.Info(fmt.Sprintf("Max pencil size reached (%d) !", s.pen.Size))
		}

	case command.Decrease:
		if s.pen.Shrink() {
			s.logger.Info(fmt.Sprintf("Decreasing pencil size to %d", s.pen.Size))
		} else {
			s.logger.Info(fmt.Sprintf("Min pencil size reached (%d) !", s.pen.Size))
		}

	case command.Clear:
		if s.canvas == nil {
			s.logger.Warn("nothing to clear", "error", ErrNoCanvas)
			return false
		}
		s.canvas.Clear()
		s.logger.Info("Clearing whiteboard!")

	case command.Save:
		if _, err := s.Save(); err != nil {
			s.logger.Error("save failed", "error", err)
		}

	case command.Circle:
		s.logger.Info("Drawing a circle")
		if err := s.drawShape(cmd); err != nil {
			s.logger.Warn("circle not drawn", "error", err)
		}

	case command.Square:
		s.logger.Info("Drawing a rectangle")
		if err := s.drawShape(cmd); err != nil {
			s.logger.Warn("rectangle not drawn", "error", err)
		}

	default:
		s.logger.Debug("ignoring command", "command", int(cmd))
	}
	return false
}

func (s *Session) drawShape(cmd command.Command) error {
	if s.canvas == nil {
		return ErrNoCanvas
	}
	seg, err := s.traj.Span()
	if err != nil {
		return err
	}
	if cmd == command.Circle {
		return s.canvas.CircleThrough(seg, s.pen)
	}
	return s.canvas.RectangleSpanning(seg, s.pen)
}

// Save hands the current canvas to the persister and returns the path it
// reports.
func (s *Session) Save() (string, error) {
	if s.store == nil {
		return "", ErrNoStore
	}
	if s.canvas == nil {
		return "", ErrNoCanvas
	}
	path, err := s.store.Save(s.canvas.Snapshot())
	if err != nil {
		return "", fmt.Errorf("save canvas: %w", err)
	}
	s.logger.Info("Saving png image as " + path)
	return path, nil
}
