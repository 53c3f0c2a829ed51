package imaging

import (
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"github.com/disintegration/imaging"
)

func TestDrawingFileName(t *testing.T) {
	ts := time.Date(2024, time.March, 5, 9, 7, 3, 0, time.UTC)
	want := "Drawing Tue Mar  5 09:07:03 2024.png"
	if got := DrawingFileName(ts); got != want {
		t.Errorf("DrawingFileName = %q, want %q", got, want)
	}
}

func TestSaver_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	ts := time.Date(2024, time.November, 21, 18, 30, 0, 0, time.UTC)
	s := &Saver{Dir: dir, Now: func() time.Time { return ts }}

	img := createInMemoryImage(8, 6, color.White)
	img.Set(3, 2, color.NRGBA{0, 0, 255, 255})

	path, err := s.Save(img)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if want := filepath.Join(dir, DrawingFileName(ts)); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	back, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("reading saved file failed: %v", err)
	}
	f := ToFrame(back)
	if f.Bounds().Dx() != 8 || f.Bounds().Dy() != 6 {
		t.Fatalf("saved size = %v", f.Bounds())
	}
	if got := f.NRGBAAt(3, 2); got != (color.NRGBA{0, 0, 255, 255}) {
		t.Errorf("saved pixel = %v, want blue", got)
	}
}
