package view

import "cubeview/internal/geom"

// Project maps a world point onto the picture plane of a pinhole camera with
// the given focal distance.
//
// A point whose depth makes focal+z-cam.Z zero projects to non-finite
// coordinates. They are returned as is; surfaces drop such strokes.
func Project(p geom.Point3D, cam Camera, focal float64) geom.Point2D {
	d := focal + p.Z - cam.Z
	return geom.Point2D{
		X:       focal * (p.X - cam.X) / d,
		Y:       focal * (p.Y - cam.Y) / d,
		Color:   p.Color,
		Visible: p.Visible,
	}
}

// ToPixel maps a projected point into pixel space. Pixel Y grows downwards.
// Results are not clamped to the display.
func ToPixel(p geom.Point2D, v Viewport) geom.Point2D {
	w, h := float64(v.Res.Width), float64(v.Res.Height)
	p.X = (p.X - v.MinX) * w / (v.MaxX - v.MinX)
	p.Y = h - (p.Y-v.MinY)*h/(v.MaxY-v.MinY)
	return p
}
