package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/airpaint/internal/imaging"
	"github.com/ironsheep/airpaint/internal/tracking"
)

// near reports whether two colors match within tol per channel.
func near(got color.Color, want imaging.RGBColor, tol int) bool {
	r, g, b, _ := got.RGBA()
	diff := func(a uint32, w uint8) bool {
		d := int(a>>8) - int(w)
		return d >= -tol && d <= tol
	}
	return diff(r, want.R) && diff(g, want.G) && diff(b, want.B)
}

// isBlank reports whether every pixel of img is white.
func isBlank(img *image.RGBA) bool {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 || img.Pix[i+1] != 255 || img.Pix[i+2] != 255 {
			return false
		}
	}
	return true
}

func newTestCanvas(t *testing.T, w, h int) *Canvas {
	t.Helper()
	c := New(w, h)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew_Blank(t *testing.T) {
	c := newTestCanvas(t, 64, 48)
	if c.Bounds() != image.Rect(0, 0, 64, 48) {
		t.Errorf("Bounds() = %v", c.Bounds())
	}
	snap := c.Snapshot()
	if snap.Bounds() != c.Bounds() {
		t.Errorf("snapshot bounds = %v", snap.Bounds())
	}
	if !isBlank(snap) {
		t.Error("new canvas should be all white")
	}
}

func TestDrawSegment(t *testing.T) {
	c := newTestCanvas(t, 100, 40)
	pen := Pen{Color: imaging.Red, Size: 10}
	seg := tracking.Segment{From: image.Pt(10, 10), To: image.Pt(50, 10)}

	if err := c.DrawSegment(seg, pen); err != nil {
		t.Fatalf("DrawSegment failed: %v", err)
	}

	snap := c.Snapshot()
	if got := snap.At(30, 10); !near(got, pen.Color, 2) {
		t.Errorf("midpoint pixel = %v, want pen color", got)
	}
	if got := snap.At(30, 12); !near(got, pen.Color, 2) {
		t.Errorf("pixel inside stroke width = %v, want pen color", got)
	}
	if got := snap.At(90, 35); !near(got, imaging.White, 0) {
		t.Errorf("pixel far from stroke = %v, want white", got)
	}
}

func TestDrawSegment_ClampsSize(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	seg := tracking.Segment{From: image.Pt(10, 50), To: image.Pt(90, 50)}
	if err := c.DrawSegment(seg, Pen{Color: imaging.Blue, Size: 500}); err != nil {
		t.Fatalf("DrawSegment failed: %v", err)
	}
	// A 30px stroke centred on y=50 stays clear of y=80.
	if got := c.Snapshot().At(50, 80); !near(got, imaging.White, 0) {
		t.Errorf("pixel at (50,80) = %v, stroke wider than MaxSize", got)
	}
}

func TestClear_Idempotent(t *testing.T) {
	c := newTestCanvas(t, 50, 50)
	seg := tracking.Segment{From: image.Pt(0, 0), To: image.Pt(49, 49)}
	if err := c.DrawSegment(seg, DefaultPen()); err != nil {
		t.Fatalf("DrawSegment failed: %v", err)
	}
	if isBlank(c.Snapshot()) {
		t.Fatal("canvas should have ink before clearing")
	}

	c.Clear()
	once := c.Snapshot()
	c.Clear()
	twice := c.Snapshot()

	if !isBlank(once) {
		t.Error("canvas should be blank after Clear")
	}
	for i := range once.Pix {
		if once.Pix[i] != twice.Pix[i] {
			t.Fatalf("second Clear changed byte %d", i)
		}
	}
}

func TestSnapshot_Independent(t *testing.T) {
	c := newTestCanvas(t, 40, 40)
	before := c.Snapshot()

	seg := tracking.Segment{From: image.Pt(5, 20), To: image.Pt(35, 20)}
	if err := c.DrawSegment(seg, DefaultPen()); err != nil {
		t.Fatalf("DrawSegment failed: %v", err)
	}

	if !isBlank(before) {
		t.Error("earlier snapshot changed after drawing")
	}
	if isBlank(c.Snapshot()) {
		t.Error("new snapshot should show the stroke")
	}
}

func TestCircleThrough(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	pen := Pen{Color: imaging.Green, Size: 4}
	seg := tracking.Segment{From: image.Pt(50, 50), To: image.Pt(80, 50)}

	if err := c.CircleThrough(seg, pen); err != nil {
		t.Fatalf("CircleThrough failed: %v", err)
	}

	snap := c.Snapshot()
	for _, p := range []image.Point{{80, 50}, {20, 50}, {50, 20}, {50, 80}} {
		if got := snap.At(p.X, p.Y); !near(got, pen.Color, 2) {
			t.Errorf("pixel %v on circle = %v, want pen color", p, got)
		}
	}
	if got := snap.At(50, 50); !near(got, imaging.White, 0) {
		t.Errorf("circle centre = %v, outline only expected", got)
	}
}

func TestRectangleSpanning(t *testing.T) {
	c := newTestCanvas(t, 100, 100)
	pen := Pen{Color: imaging.Blue, Size: 4}
	// Corners given bottom-right first.
	seg := tracking.Segment{From: image.Pt(80, 70), To: image.Pt(20, 30)}

	if err := c.RectangleSpanning(seg, pen); err != nil {
		t.Fatalf("RectangleSpanning failed: %v", err)
	}

	snap := c.Snapshot()
	for _, p := range []image.Point{{50, 30}, {50, 70}, {20, 50}, {80, 50}} {
		if got := snap.At(p.X, p.Y); !near(got, pen.Color, 2) {
			t.Errorf("pixel %v on edge = %v, want pen color", p, got)
		}
	}
	if got := snap.At(50, 50); !near(got, imaging.White, 0) {
		t.Errorf("rectangle centre = %v, outline only expected", got)
	}
}

func TestDegenerateShapes(t *testing.T) {
	c := newTestCanvas(t, 30, 30)
	pen := DefaultPen()
	p := image.Pt(15, 15)

	if err := c.DrawCircle(p, 0, pen); err != nil {
		t.Fatalf("DrawCircle failed: %v", err)
	}
	if err := c.DrawRectangle(image.Rectangle{Min: p, Max: p}, pen); err != nil {
		t.Fatalf("DrawRectangle failed: %v", err)
	}
	if !isBlank(c.Snapshot()) {
		t.Error("zero-sized shapes should draw nothing")
	}
}
