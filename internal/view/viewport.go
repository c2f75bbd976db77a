package view

// Camera is the eye position in world space.
type Camera struct {
	X, Y, Z float64
}

// Resolution is the display size in pixels.
type Resolution struct {
	Width, Height int
}

// Valid reports whether both dimensions are positive.
func (r Resolution) Valid() bool { return r.Width > 0 && r.Height > 0 }

// Viewport is the world-space rectangle mapped onto the display.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
	Res        Resolution
}

// Calibrate derives the visible rectangle for a camera. The X extent is always
// width; the Y extent follows from the resolution so that one world unit covers
// the same number of pixels on both axes.
func Calibrate(cam Camera, width float64, res Resolution) Viewport {
	v := Viewport{
		MinX: cam.X - width/2,
		MaxX: cam.X + width/2,
		Res:  res,
	}
	pxl := float64(res.Width) / (v.MaxX - v.MinX)
	halfH := float64(res.Height) / pxl / 2
	v.MinY = cam.Y - halfH
	v.MaxY = cam.Y + halfH
	return v
}

// PixelsPerUnit returns the horizontal and vertical pixel scale.
func (v Viewport) PixelsPerUnit() (x, y float64) {
	return float64(v.Res.Width) / (v.MaxX - v.MinX), float64(v.Res.Height) / (v.MaxY - v.MinY)
}
