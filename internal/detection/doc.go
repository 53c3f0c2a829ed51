// Package detection finds the pen tip in a segmented mask.
//
// The mask produced by color thresholding usually contains the pen plus
// scattered specks of similar color elsewhere in the scene. This package
// splits the mask into connected regions and keeps the largest one, which is
// treated as the pen tip.
//
// # Connectivity
//
// Regions are 8-connected: two cells belong to the same region when they are
// adjacent horizontally, vertically, or diagonally.
//
// # Determinism
//
// Labeling walks the mask in raster order, so region labels and tie-breaks
// depend only on the mask contents. Two regions of equal area resolve to the
// one whose first cell comes first in that order.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Bounding boxes use inclusive top-left and exclusive bottom-right
//
// # Performance Considerations
//
// Label visits every cell of the mask; nothing is sampled or capped. It is
// the dominant per-frame cost of the pipeline and is linear in the number of
// pixels.
package detection
