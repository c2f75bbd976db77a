package raster

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// ErrNoCanvas is returned when drawing before the canvas has a size.
var ErrNoCanvas = errors.New("raster: canvas not allocated")

// Canvas is a software drawing surface backed by an RGBA image.
type Canvas struct {
	img        *image.RGBA
	Background color.RGBA
}

// NewCanvas allocates a w x h canvas cleared to bg.
func NewCanvas(w, h int, bg color.RGBA) *Canvas {
	c := &Canvas{Background: bg}
	c.Resize(w, h)
	return c
}

// Resize reallocates the backing image if the size changed. Non-positive
// sizes release it.
func (c *Canvas) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		c.img = nil
		return
	}
	if c.img != nil && c.img.Rect.Dx() == w && c.img.Rect.Dy() == h {
		return
	}
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	c.fill(c.Background)
}

// Size returns the pixel dimensions, or zero when unallocated.
func (c *Canvas) Size() (w, h int) {
	if c.img == nil {
		return 0, 0
	}
	return c.img.Rect.Dx(), c.img.Rect.Dy()
}

// Image returns the backing image. It is reused between frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Clear fills the whole canvas with the background color.
func (c *Canvas) Clear() error {
	if c.img == nil {
		return ErrNoCanvas
	}
	c.fill(c.Background)
	return nil
}

func (c *Canvas) fill(col color.RGBA) {
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// StrokeSegment draws a line from (x0, y0) to (x1, y1). Pixels outside the
// canvas are clipped; segments with non-finite endpoints are dropped.
// Widths above one pixel are drawn as parallel offset lines.
func (c *Canvas) StrokeSegment(x0, y0, x1, y1 float64, col color.RGBA, width float64) error {
	if c.img == nil {
		return ErrNoCanvas
	}
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return nil
	}
	n := int(math.Round(width))
	if n < 1 {
		n = 1
	}
	for k := 0; k < n; k++ {
		off := float64(k - n/2)
		DrawLine(c.img, x0+off, y0, x1+off, y1, col)
	}
	return nil
}

// DrawLine draws a line on the image from (x1, y1) to (x2, y2) with a DDA walk.
// Out-of-bounds pixels are skipped.
func DrawLine(img *image.RGBA, x1, y1, x2, y2 float64, col color.RGBA) {
	b := img.Bounds()
	// far away segments would otherwise walk millions of clipped steps
	if math.Max(x1, x2) < float64(b.Min.X)-1 || math.Min(x1, x2) > float64(b.Max.X) ||
		math.Max(y1, y2) < float64(b.Min.Y)-1 || math.Min(y1, y2) > float64(b.Max.Y) {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))

	var xInc, yInc float64
	if steps > 0 {
		xInc = dx / steps
		yInc = dy / steps
	}

	x := x1
	y := y1

	for i := 0; i <= int(steps); i++ {
		ix := int(math.Floor(x))
		iy := int(math.Floor(y))
		if image.Pt(ix, iy).In(b) {
			offset := img.PixOffset(ix, iy)
			img.Pix[offset] = col.R
			img.Pix[offset+1] = col.G
			img.Pix[offset+2] = col.B
			img.Pix[offset+3] = col.A
		}
		x += xInc
		y += yInc
	}
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
