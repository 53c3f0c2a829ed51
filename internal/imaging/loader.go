package imaging

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
)

// ImageCache provides thread-safe caching of decoded frames keyed by file path.
//
// A replay sequence that loops would otherwise decode the same files on every
// pass. Once a path is loaded, later Load calls return the cached frame.
//
// Cached frames remain in memory until Evict or Clear is called.
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*image.NRGBA
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*image.NRGBA),
	}
}

// Load retrieves a frame from the cache or decodes it from disk.
//
// Parameters:
//   - path: File path to a PNG, JPEG, or GIF image.
//
// Returns:
//   - *image.NRGBA: The decoded frame, anchored at (0, 0). Callers must not
//     modify it; it is shared with later Load calls.
//   - error: Non-nil if the file cannot be opened or decoded.
func (c *ImageCache) Load(path string) (*image.NRGBA, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	frame := ToFrame(img)

	c.mu.Lock()
	c.images[path] = frame
	c.mu.Unlock()

	return frame, nil
}

// Len returns the number of cached frames.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Clear removes all frames from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*image.NRGBA)
	c.mu.Unlock()
}

// Evict removes a specific frame from the cache by its path.
// If the path is not in the cache, this method does nothing.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Sequence plays back a directory of still images as if they were camera
// frames. Files are visited in lexical order of their names.
type Sequence struct {
	paths []string
	next  int
	loop  bool
	cache *ImageCache
}

// frameExtensions lists the file extensions a Sequence will pick up.
var frameExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// OpenSequence lists the image files in dir.
//
// Parameters:
//   - dir: Directory containing the frames. Sub-directories are ignored.
//   - loop: When true, the sequence restarts after the last frame instead
//     of reporting io.EOF.
//
// Returns:
//   - *Sequence: Ready to read from the first frame.
//   - error: Non-nil if the directory cannot be read or holds no images.
func OpenSequence(dir string, loop bool) (*Sequence, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame directory: %w", err)
	}

	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if frameExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no image files in %s", dir)
	}
	sort.Strings(paths)

	s := &Sequence{paths: paths, loop: loop}
	if loop {
		s.cache = NewImageCache()
	}
	return s, nil
}

// Len returns the number of frames in one pass of the sequence.
func (s *Sequence) Len() int {
	return len(s.paths)
}

// Next decodes and returns the next frame.
//
// Returns io.EOF once every frame has been returned and the sequence does
// not loop. Every returned frame is a private copy the caller may modify.
func (s *Sequence) Next() (*image.NRGBA, error) {
	if s.next >= len(s.paths) {
		if !s.loop {
			return nil, io.EOF
		}
		s.next = 0
	}
	path := s.paths[s.next]
	s.next++

	if s.cache != nil {
		img, err := s.cache.Load(path)
		if err != nil {
			return nil, err
		}
		return imaging.Clone(img), nil
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return imaging.Clone(img), nil
}
