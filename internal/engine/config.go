package engine

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"cubeview/internal/geom"
	"cubeview/internal/view"
)

// ErrInvalidConfig wraps every Config validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Nudge selects what the rotation keys change.
type Nudge int

const (
	// NudgeAngle turns the model by AngleStep per key press.
	NudgeAngle Nudge = iota
	// NudgeVelocity changes the angular velocity by AngleStep per key press;
	// the render loop integrates it every frame.
	NudgeVelocity
)

func (n Nudge) String() string {
	switch n {
	case NudgeAngle:
		return "angle"
	case NudgeVelocity:
		return "velocity"
	}
	return fmt.Sprintf("Nudge(%d)", int(n))
}

// ParseNudge converts "angle" or "velocity" into a Nudge.
func ParseNudge(s string) (Nudge, error) {
	switch s {
	case "angle":
		return NudgeAngle, nil
	case "velocity":
		return NudgeVelocity, nil
	}
	return 0, fmt.Errorf("unknown nudge mode %q", s)
}

// Config holds the renderer constants. Distances are world units, angles radians.
type Config struct {
	Focal         float64 // pinhole focal distance
	ViewportWidth float64 // world-space width mapped onto the display
	HalfExtent    float64 // cube spans [-HalfExtent, HalfExtent] on every axis
	Samples       int     // grid points per axis

	Fill   geom.Fill
	Camera view.Camera // start position

	CameraStep float64
	AngleStep  float64
	Nudge      Nudge

	Rotate bool       // apply accumulated angles when drawing
	Spin   mgl64.Vec3 // initial angular velocity per frame

	PointColor  color.RGBA // used for points without their own color
	Background  color.RGBA
	StrokeWidth float64

	Verbose bool // log ignored keys and dropped frames
}

// DefaultConfig returns the stock settings: a 21-sample shell cube of half
// extent 500 viewed from z=-1000.
func DefaultConfig() Config {
	return Config{
		Focal:         2000,
		ViewportWidth: 4000,
		HalfExtent:    500,
		Samples:       21,
		Fill:          geom.FillShell,
		Camera:        view.Camera{X: 0, Y: 0, Z: -1000},
		CameraStep:    10,
		AngleStep:     0.01,
		Nudge:         NudgeAngle,
		Rotate:        true,
		PointColor:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Background:    color.RGBA{A: 0xff},
		StrokeWidth:   1,
	}
}

// Step returns the grid spacing along each axis.
func (c Config) Step() float64 {
	return 2 * c.HalfExtent / float64(c.Samples-1)
}

// Validate reports the first setting that cannot produce a picture.
func (c Config) Validate() error {
	switch {
	case c.Focal <= 0:
		return fmt.Errorf("%w: focal distance %v", ErrInvalidConfig, c.Focal)
	case c.ViewportWidth <= 0:
		return fmt.Errorf("%w: viewport width %v", ErrInvalidConfig, c.ViewportWidth)
	case c.HalfExtent <= 0:
		return fmt.Errorf("%w: half extent %v", ErrInvalidConfig, c.HalfExtent)
	case c.Samples < 2:
		return fmt.Errorf("%w: %d samples per axis", ErrInvalidConfig, c.Samples)
	case c.Fill != geom.FillShell && c.Fill != geom.FillVolume:
		return fmt.Errorf("%w: fill %v", ErrInvalidConfig, c.Fill)
	case c.Nudge != NudgeAngle && c.Nudge != NudgeVelocity:
		return fmt.Errorf("%w: nudge %v", ErrInvalidConfig, c.Nudge)
	case c.StrokeWidth <= 0:
		return fmt.Errorf("%w: stroke width %v", ErrInvalidConfig, c.StrokeWidth)
	}
	return nil
}
