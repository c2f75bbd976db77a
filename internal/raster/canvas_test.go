package raster

import (
	"errors"
	"image/color"
	"math"
	"testing"
)

var (
	black = color.RGBA{A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func TestStrokeDiagonal(t *testing.T) {
	c := NewCanvas(8, 8, black)
	if err := c.StrokeSegment(2, 3, 3, 4, red, 1); err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	for _, p := range [][2]int{{2, 3}, {3, 4}} {
		if got := img.RGBAAt(p[0], p[1]); got != red {
			t.Errorf("pixel %v = %v, want red", p, got)
		}
	}
	if got := img.RGBAAt(0, 0); got != black {
		t.Errorf("background pixel = %v", got)
	}
}

func TestStrokeClipsAndDropsNonFinite(t *testing.T) {
	c := NewCanvas(4, 4, black)
	segs := [][4]float64{
		{-10, -10, -9, -9},
		{100, 2, 101, 3},
		{math.Inf(1), 1, math.Inf(1), 2},
		{math.NaN(), 1, 2, 2},
	}
	for _, s := range segs {
		if err := c.StrokeSegment(s[0], s[1], s[2], s[3], red, 1); err != nil {
			t.Fatalf("segment %v: %v", s, err)
		}
	}
	img := c.Image()
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			t.Fatalf("pixel at offset %d was drawn", i)
		}
	}
}

func TestStrokeWidth(t *testing.T) {
	c := NewCanvas(8, 8, black)
	if err := c.StrokeSegment(4, 1, 4, 1, red, 3); err != nil {
		t.Fatal(err)
	}
	for x := 3; x <= 5; x++ {
		if got := c.Image().RGBAAt(x, 1); got != red {
			t.Errorf("pixel (%d,1) = %v", x, got)
		}
	}
}

func TestClearAndResize(t *testing.T) {
	c := NewCanvas(2, 2, black)
	_ = c.StrokeSegment(0, 0, 1, 1, red, 1)
	if err := c.Clear(); err != nil {
		t.Fatal(err)
	}
	if got := c.Image().RGBAAt(0, 0); got != black {
		t.Fatalf("after clear = %v", got)
	}

	c.Resize(5, 3)
	if w, h := c.Size(); w != 5 || h != 3 {
		t.Fatalf("size %dx%d", w, h)
	}

	c.Resize(0, 3)
	if w, h := c.Size(); w != 0 || h != 0 {
		t.Fatalf("size %dx%d after release", w, h)
	}
	if err := c.Clear(); !errors.Is(err, ErrNoCanvas) {
		t.Fatalf("Clear err = %v", err)
	}
	if err := c.StrokeSegment(0, 0, 1, 1, red, 1); !errors.Is(err, ErrNoCanvas) {
		t.Fatalf("StrokeSegment err = %v", err)
	}
}
