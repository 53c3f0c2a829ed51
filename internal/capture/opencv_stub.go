//go:build !cgo

package capture

import (
	"image"

	"github.com/ironsheep/airpaint/internal/command"
)

// Device is unavailable without cgo.
type Device struct{}

// OpenCamera always fails with ErrNoCamera without cgo.
func OpenCamera(id int) (*Device, error) {
	return nil, ErrNoCamera
}

// ReadFrame always fails.
func (d *Device) ReadFrame() (*image.NRGBA, error) {
	return nil, ErrNoCamera
}

// Close is a no-op.
func (d *Device) Close() error {
	return nil
}

// Windows is unavailable without cgo.
type Windows struct{}

// OpenWindows always fails with ErrNoCamera without cgo.
func OpenWindows() (*Windows, error) {
	return nil, ErrNoCamera
}

// Show always fails.
func (w *Windows) Show(Views) error {
	return ErrNoCamera
}

// Poll never yields a command.
func (w *Windows) Poll() command.Command {
	return command.None
}

// Close is a no-op.
func (w *Windows) Close() error {
	return nil
}
