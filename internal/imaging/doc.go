// Package imaging provides the pixel-level building blocks of the pen
// tracker: frames, color thresholds, binary masks, and image file I/O.
//
// All operations use standard Go image types and a coordinate system where
// (0,0) is at the top-left corner, X increases rightward, and Y increases
// downward.
//
// # Frames and Masks
//
// A frame is an *image.NRGBA anchored at (0, 0). Segment turns a frame into
// a Mask, a row-major grid of booleans of the same width and height. A cell
// is true when all three channels of the pixel fall inside the configured
// Thresholds, bounds inclusive.
//
// # Conditioning
//
// Prepare mirrors and optionally blurs a raw camera frame before it is
// segmented. The blur is useful on noisy sensors where the selected color
// breaks into speckles.
//
// # File I/O
//
// Sequence replays a directory of still images as a camera. Saver writes
// canvas snapshots as PNG files named after the time they were taken.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Sequence and Saver are not; they
// are owned by the session loop.
package imaging
