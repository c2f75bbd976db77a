package engine

import "github.com/go-gl/mathgl/mgl64"

// Key identifies a physical key independently of the host toolkit. The names
// follow the DOM KeyboardEvent.code values.
type Key string

const (
	KeyW          Key = "KeyW"
	KeyS          Key = "KeyS"
	KeyQ          Key = "KeyQ"
	KeyE          Key = "KeyE"
	KeyA          Key = "KeyA"
	KeyD          Key = "KeyD"
	KeyZ          Key = "KeyZ"
	KeyC          Key = "KeyC"
	KeyR          Key = "KeyR"
	KeySpace      Key = "Space"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
)

// Axis indexes X, Y and Z.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Op is what a key does.
type Op int

const (
	OpMove   Op = iota + 1 // translate the camera by Sign*CameraStep
	OpTurn                 // nudge the angle or velocity by Sign*AngleStep
	OpReset                // zero the angles, restore the configured spin
	OpToggle               // switch rotation on or off
)

// Action is one entry of the key table.
type Action struct {
	Op   Op
	Axis Axis
	Sign float64
}

var keyActions = map[Key]Action{
	KeyW:          {OpMove, AxisZ, +1},
	KeyS:          {OpMove, AxisZ, -1},
	KeyArrowUp:    {OpMove, AxisY, +1},
	KeyArrowDown:  {OpMove, AxisY, -1},
	KeyArrowLeft:  {OpMove, AxisX, -1},
	KeyArrowRight: {OpMove, AxisX, +1},
	KeyZ:          {OpTurn, AxisX, -1},
	KeyC:          {OpTurn, AxisX, +1},
	KeyA:          {OpTurn, AxisY, -1},
	KeyD:          {OpTurn, AxisY, +1},
	KeyQ:          {OpTurn, AxisZ, -1},
	KeyE:          {OpTurn, AxisZ, +1},
	KeyR:          {Op: OpReset},
	KeySpace:      {Op: OpToggle},
}

// Lookup returns the action bound to k.
func Lookup(k Key) (Action, bool) {
	a, ok := keyActions[k]
	return a, ok
}

// Keys lists every bound key.
func Keys() []Key {
	keys := make([]Key, 0, len(keyActions))
	for k := range keyActions {
		keys = append(keys, k)
	}
	return keys
}

// HandleKey applies the action bound to k. Unbound keys are ignored and
// reported as false. Camera moves recalibrate the viewport before returning.
func (e *Engine) HandleKey(k Key) bool {
	a, ok := Lookup(k)
	if !ok {
		if e.cfg.Verbose {
			e.log.Printf("ignoring unknown key %q", k)
		}
		return false
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	switch a.Op {
	case OpMove:
		d := a.Sign * e.cfg.CameraStep
		switch a.Axis {
		case AxisX:
			e.cam.X += d
		case AxisY:
			e.cam.Y += d
		case AxisZ:
			e.cam.Z += d
		}
		e.calibrate()
	case OpTurn:
		d := a.Sign * e.cfg.AngleStep
		if e.cfg.Nudge == NudgeVelocity {
			e.orient.Velocity[a.Axis] += d
		} else {
			e.orient.Angle[a.Axis] += d
		}
	case OpReset:
		e.orient.Angle = mgl64.Vec3{}
		e.orient.Velocity = e.cfg.Spin
	case OpToggle:
		e.rotate = !e.rotate
	}
	return true
}
