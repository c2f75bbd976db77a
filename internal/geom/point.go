package geom

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3D is a point in world space. Values are never mutated in place;
// transforms return new points.
//
// A Color with zero alpha means "no color": the renderer substitutes its
// default color.
type Point3D struct {
	X, Y, Z float64
	Color   color.RGBA
	Visible bool
}

// Point2D is a point either in projected world space or in pixel space,
// depending on which pipeline stage produced it.
type Point2D struct {
	X, Y    float64
	Color   color.RGBA
	Visible bool
}

// Cloud is an ordered set of points. Its length is fixed once generated.
type Cloud []Point3D

// NewPoint3D returns a visible, uncolored point.
func NewPoint3D(x, y, z float64) Point3D {
	return Point3D{X: x, Y: y, Z: z, Visible: true}
}

// Vec returns the position as a mathgl vector.
func (p Point3D) Vec() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// WithVec returns a copy of p moved to v, keeping its attributes.
func (p Point3D) WithVec(v mgl64.Vec3) Point3D {
	p.X, p.Y, p.Z = v[0], v[1], v[2]
	return p
}

// HasColor reports whether the point carries its own color.
func (p Point3D) HasColor() bool { return p.Color.A != 0 }

// HasColor reports whether the point carries its own color.
func (p Point2D) HasColor() bool { return p.Color.A != 0 }

// ColorOr returns the point's color, or def if it has none.
func (p Point2D) ColorOr(def color.RGBA) color.RGBA {
	if p.HasColor() {
		return p.Color
	}
	return def
}

// Hex parses "#rrggbb" into an opaque color. Malformed input yields the zero color.
func Hex(s string) color.RGBA {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}
	}
	var v [3]uint8
	for i := range v {
		hi, ok1 := hexNibble(s[1+2*i])
		lo, ok2 := hexNibble(s[2+2*i])
		if !ok1 || !ok2 {
			return color.RGBA{}
		}
		v[i] = hi<<4 | lo
	}
	return color.RGBA{R: v[0], G: v[1], B: v[2], A: 0xff}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
