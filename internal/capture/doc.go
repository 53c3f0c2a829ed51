// Package capture supplies frames to the session loop and shows its output.
//
// Two cameras are available:
//   - Device reads a live webcam through OpenCV (gocv). It is only
//     compiled with cgo; without cgo OpenCamera returns ErrNoCamera.
//   - Replay reads a directory of still images in name order, which is
//     how the pipeline runs headless and in tests.
//
// Windows is the on-screen display. It opens four OpenCV windows laid out
// around the camera view and doubles as the keyboard command source, since
// OpenCV only delivers key presses while one of its windows has focus.
package capture
