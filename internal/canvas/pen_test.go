package canvas

import (
	"testing"

	"github.com/ironsheep/airpaint/internal/imaging"
)

func TestDefaultPen(t *testing.T) {
	p := DefaultPen()
	if p.Color != imaging.Red {
		t.Errorf("Color = %v, want red", p.Color)
	}
	if p.Size != 10 {
		t.Errorf("Size = %d, want 10", p.Size)
	}
	if got := p.String(); got != "#ff0000 10px" {
		t.Errorf("String() = %q", got)
	}
}

func TestPen_GrowStopsAtMax(t *testing.T) {
	p := Pen{Color: imaging.Blue, Size: MaxSize - 1}
	if !p.Grow() {
		t.Fatal("Grow from 29 should succeed")
	}
	if p.Size != MaxSize {
		t.Fatalf("Size = %d, want %d", p.Size, MaxSize)
	}
	if p.Grow() {
		t.Error("Grow at max should report false")
	}
	if p.Size != MaxSize {
		t.Errorf("Size after Grow at max = %d, want %d", p.Size, MaxSize)
	}
}

func TestPen_ShrinkStopsAtMin(t *testing.T) {
	p := Pen{Color: imaging.Green, Size: 2}
	if !p.Shrink() {
		t.Fatal("Shrink from 2 should succeed")
	}
	if p.Shrink() {
		t.Error("Shrink at min should report false")
	}
	if p.Size != MinSize {
		t.Errorf("Size = %d, want %d", p.Size, MinSize)
	}
}

func TestClampSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-4, 1},
		{0, 1},
		{1, 1},
		{15, 15},
		{30, 30},
		{31, 30},
		{1000, 30},
	}
	for _, tt := range tests {
		if got := ClampSize(tt.in); got != tt.want {
			t.Errorf("ClampSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPen_OutOfRangeSizeIsPulledIn(t *testing.T) {
	p := Pen{Size: 99}
	if p.Grow() {
		t.Error("Grow above max should report false")
	}
	if p.Size != MaxSize {
		t.Errorf("Size = %d, want %d", p.Size, MaxSize)
	}
}
