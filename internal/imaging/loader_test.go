package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeTestImage writes a solid-color PNG into dir and returns its path.
func writeTestImage(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache()
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.Len() != 0 {
		t.Fatalf("new cache should be empty, has %d", cache.Len())
	}
}

func TestImageCache_Load(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTestImage(t, t.TempDir(), "red.png", 100, 80, color.RGBA{255, 0, 0, 255})

	img1, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img1.Bounds() != image.Rect(0, 0, 100, 80) {
		t.Errorf("unexpected bounds: %v", img1.Bounds())
	}
	if got := img1.NRGBAAt(10, 10); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("pixel = %v, want red", got)
	}

	// Second load should return cached image
	img2, err := cache.Load(imgPath)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache()
	if _, err := cache.Load("/nonexistent/path/to/image.png"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestImageCache_Load_InvalidImage(t *testing.T) {
	cache := NewImageCache()
	path := filepath.Join(t.TempDir(), "invalid.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := cache.Load(path); err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestImageCache_ClearEvict(t *testing.T) {
	cache := NewImageCache()
	dir := t.TempDir()
	a := writeTestImage(t, dir, "a.png", 5, 5, color.White)
	b := writeTestImage(t, dir, "b.png", 5, 5, color.Black)

	for _, p := range []string{a, b} {
		if _, err := cache.Load(p); err != nil {
			t.Fatalf("Load(%s) failed: %v", p, err)
		}
	}

	cache.Evict(a)
	if cache.Len() != 1 {
		t.Errorf("Evict: Len() = %d, want 1", cache.Len())
	}
	cache.Evict("/nonexistent/path") // no-op

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Clear: Len() = %d, want 0", cache.Len())
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	cache := NewImageCache()
	imgPath := writeTestImage(t, t.TempDir(), "gray.png", 50, 50, color.RGBA{128, 128, 128, 255})

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(imgPath); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent Load failed: %v", err)
	}
}

func TestOpenSequence(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "frame_002.png", 4, 4, color.RGBA{0, 255, 0, 255})
	writeTestImage(t, dir, "frame_001.png", 4, 4, color.RGBA{255, 0, 0, 255})
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	seq, err := OpenSequence(dir, false)
	if err != nil {
		t.Fatalf("OpenSequence failed: %v", err)
	}
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", seq.Len())
	}

	want := []color.NRGBA{{255, 0, 0, 255}, {0, 255, 0, 255}}
	for i, w := range want {
		f, err := seq.Next()
		if err != nil {
			t.Fatalf("Next() #%d failed: %v", i, err)
		}
		if got := f.NRGBAAt(1, 1); got != w {
			t.Errorf("frame %d pixel = %v, want %v", i, got, w)
		}
	}

	if _, err := seq.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() after end = %v, want io.EOF", err)
	}
}

func TestOpenSequence_Loop(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 3; i++ {
		writeTestImage(t, dir, fmt.Sprintf("f%d.png", i), 2, 2, color.White)
	}

	seq, err := OpenSequence(dir, true)
	if err != nil {
		t.Fatalf("OpenSequence failed: %v", err)
	}

	for i := 0; i < 7; i++ {
		f, err := seq.Next()
		if err != nil {
			t.Fatalf("Next() #%d failed: %v", i, err)
		}
		// Frames are private copies even when cached.
		f.Set(0, 0, color.Black)
	}
	if seq.cache.Len() != 3 {
		t.Errorf("cache holds %d frames, want 3", seq.cache.Len())
	}

	f, _ := seq.Next()
	if got := f.NRGBAAt(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("cached frame was modified through a returned copy: %v", got)
	}
}

func TestOpenSequence_Errors(t *testing.T) {
	if _, err := OpenSequence("/nonexistent/frames", false); err == nil {
		t.Error("OpenSequence should fail for a missing directory")
	}
	if _, err := OpenSequence(t.TempDir(), false); err == nil {
		t.Error("OpenSequence should fail for a directory with no images")
	}
}
