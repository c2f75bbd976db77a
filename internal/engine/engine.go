// Package engine holds the simulation state of the point cloud viewer and
// drives one frame at a time on behalf of a host.
//
// Hosts own scheduling: they call Resize when the display size changes,
// HandleKey on key presses, and Frame once per display refresh. All three
// are serialized by one mutex, so a host may deliver input from another
// goroutine.
package engine

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"cubeview/internal/geom"
	"cubeview/internal/view"
)

// ErrNoSurface is returned by Frame when there is nothing to draw on yet:
// a nil surface, or no valid resolution received.
var ErrNoSurface = errors.New("no drawing surface")

// Surface is the drawing primitive the render loop needs.
type Surface interface {
	Clear() error
	StrokeSegment(x0, y0, x1, y1 float64, c color.RGBA, width float64) error
}

// Orientation is the accumulated model rotation and its per-frame rate.
type Orientation struct {
	Angle    mgl64.Vec3
	Velocity mgl64.Vec3
}

// Engine is the mutable viewer state.
type Engine struct {
	mu sync.Mutex

	cfg  Config
	log  *log.Logger
	base geom.Cloud

	cam    view.Camera
	orient Orientation
	rotate bool
	res    view.Resolution
	vp     view.Viewport
	frames uint64
}

// New builds the point cloud and the initial state. A nil logger means
// log.Default().
func New(cfg Config, logger *log.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		cfg:    cfg,
		log:    logger,
		base:   geom.Cube(cfg.HalfExtent, cfg.Samples, cfg.Fill),
		cam:    cfg.Camera,
		orient: Orientation{Velocity: cfg.Spin},
		rotate: cfg.Rotate,
	}
	if cfg.Verbose {
		e.log.Printf("generated %s cube: %d points, step %.3f", cfg.Fill, len(e.base), cfg.Step())
	}
	return e, nil
}

// Config returns the settings the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Cloud returns the untransformed model. Callers must not modify it.
func (e *Engine) Cloud() geom.Cloud { return e.base }

// Resize records a new display resolution and recalibrates the viewport.
// Non-positive sizes (a minimized window) are ignored.
func (e *Engine) Resize(width, height int) {
	res := view.Resolution{Width: width, Height: height}
	if !res.Valid() {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if res == e.res {
		return
	}
	e.res = res
	e.calibrate()
}

// calibrate must be called with mu held.
func (e *Engine) calibrate() {
	if !e.res.Valid() {
		return
	}
	e.vp = view.Calibrate(e.cam, e.cfg.ViewportWidth, e.res)
}

// Camera returns the current camera position.
func (e *Engine) Camera() view.Camera {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cam
}

// Orientation returns the current angles and angular velocities.
func (e *Engine) Orientation() Orientation {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.orient
}

// Viewport returns the current calibration.
func (e *Engine) Viewport() view.Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.vp
}

// Rotating reports whether accumulated angles are applied when drawing.
func (e *Engine) Rotating() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.rotate
}

// Frames returns how many frames have completed.
func (e *Engine) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.frames
}

// Frame clears s, rotates the model by the accumulated angles, advances the
// angles by their velocities and strokes every visible point. A surface error
// abandons the rest of the frame; the state has already advanced, so the next
// frame carries on normally.
func (e *Engine) Frame(s Surface) error {
	if s == nil {
		return ErrNoSurface
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.res.Valid() {
		return ErrNoSurface
	}
	if err := s.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	cloud := e.base
	if e.rotate {
		a := e.orient.Angle
		cloud = geom.RotateXYZ(cloud, a[0], a[1], a[2])
		e.orient.Angle = a.Add(e.orient.Velocity)
	}
	e.frames++

	w := e.cfg.StrokeWidth
	for i, p := range cloud {
		if !p.Visible {
			continue
		}
		px := view.ToPixel(view.Project(p, e.cam, e.cfg.Focal), e.vp)
		if err := s.StrokeSegment(px.X, px.Y, px.X+1, px.Y+1, px.ColorOr(e.cfg.PointColor), w); err != nil {
			return fmt.Errorf("stroke point %d: %w", i, err)
		}
	}
	return nil
}
