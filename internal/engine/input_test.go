package engine

import (
	"bytes"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"cubeview/internal/view"
)

func TestMoveRightTenTimes(t *testing.T) {
	e := newEngine(t, nil)
	for i := 0; i < 10; i++ {
		if !e.HandleKey(KeyArrowRight) {
			t.Fatal("key not handled")
		}
	}
	if got := e.Camera(); got != (view.Camera{X: 100, Y: 0, Z: -1000}) {
		t.Fatalf("camera %+v", got)
	}
}

func TestMoveKeys(t *testing.T) {
	tests := []struct {
		key  Key
		want view.Camera
	}{
		{KeyW, view.Camera{Z: -990}},
		{KeyS, view.Camera{Z: -1010}},
		{KeyArrowUp, view.Camera{Y: 10, Z: -1000}},
		{KeyArrowDown, view.Camera{Y: -10, Z: -1000}},
		{KeyArrowLeft, view.Camera{X: -10, Z: -1000}},
		{KeyArrowRight, view.Camera{X: 10, Z: -1000}},
	}
	for _, tc := range tests {
		e := newEngine(t, nil)
		e.HandleKey(tc.key)
		if got := e.Camera(); got != tc.want {
			t.Errorf("%s: camera %+v, want %+v", tc.key, got, tc.want)
		}
	}
}

func TestMoveRecalibrates(t *testing.T) {
	e := newEngine(t, nil)
	e.HandleKey(KeyArrowLeft)
	e.HandleKey(KeyArrowUp)
	v := e.Viewport()
	if v.MinX != -2010 || v.MaxX != 1990 {
		t.Fatalf("x range [%v, %v]", v.MinX, v.MaxX)
	}
	if c := (v.MinY + v.MaxY) / 2; math.Abs(c-10) > 1e-9 {
		t.Fatalf("y center %v", c)
	}
}

func TestTurnKeysNudgeAngle(t *testing.T) {
	tests := []struct {
		key  Key
		want mgl64.Vec3
	}{
		{KeyZ, mgl64.Vec3{-0.01, 0, 0}},
		{KeyC, mgl64.Vec3{0.01, 0, 0}},
		{KeyA, mgl64.Vec3{0, -0.01, 0}},
		{KeyD, mgl64.Vec3{0, 0.01, 0}},
		{KeyQ, mgl64.Vec3{0, 0, -0.01}},
		{KeyE, mgl64.Vec3{0, 0, 0.01}},
	}
	for _, tc := range tests {
		e := newEngine(t, nil)
		e.HandleKey(tc.key)
		o := e.Orientation()
		if o.Angle != tc.want {
			t.Errorf("%s: angle %v, want %v", tc.key, o.Angle, tc.want)
		}
		if o.Velocity != (mgl64.Vec3{}) {
			t.Errorf("%s: velocity changed to %v", tc.key, o.Velocity)
		}
	}
}

func TestTurnKeysNudgeVelocity(t *testing.T) {
	e := newEngine(t, func(c *Config) {
		c.Nudge = NudgeVelocity
		c.Samples = 2
	})
	e.HandleKey(KeyD)
	e.HandleKey(KeyD)
	o := e.Orientation()
	if o.Angle != (mgl64.Vec3{}) || o.Velocity != (mgl64.Vec3{0, 0.02, 0}) {
		t.Fatalf("orientation %+v", o)
	}
	if err := e.Frame(&recorder{}); err != nil {
		t.Fatal(err)
	}
	if got := e.Orientation().Angle; got != (mgl64.Vec3{0, 0.02, 0}) {
		t.Fatalf("angle after a frame %v", got)
	}
}

func TestResetAndToggle(t *testing.T) {
	spin := mgl64.Vec3{0, 0.005, 0}
	e := newEngine(t, func(c *Config) {
		c.Nudge = NudgeVelocity
		c.Spin = spin
	})
	e.HandleKey(KeyC)
	if err := e.Frame(&recorder{}); err != nil {
		t.Fatal(err)
	}
	e.HandleKey(KeyR)
	if o := e.Orientation(); o.Angle != (mgl64.Vec3{}) || o.Velocity != spin {
		t.Fatalf("after reset %+v", o)
	}

	e.HandleKey(KeySpace)
	if e.Rotating() {
		t.Fatal("rotation still on")
	}
	e.HandleKey(KeySpace)
	if !e.Rotating() {
		t.Fatal("rotation still off")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Verbose = true
	e, err := New(cfg, log.New(&buf, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	before := e.Camera()
	if e.HandleKey("KeyX") {
		t.Fatal("unknown key reported as handled")
	}
	if e.Camera() != before || e.Orientation() != (Orientation{}) {
		t.Fatal("unknown key changed state")
	}
	if !strings.Contains(buf.String(), `"KeyX"`) {
		t.Fatalf("log = %q", buf.String())
	}
}

func TestKeysAreBound(t *testing.T) {
	keys := Keys()
	if len(keys) != 14 {
		t.Fatalf("%d keys bound", len(keys))
	}
	for _, k := range keys {
		if _, ok := Lookup(k); !ok {
			t.Errorf("%s listed but not bound", k)
		}
	}
}

func TestParseNudge(t *testing.T) {
	for _, n := range []Nudge{NudgeAngle, NudgeVelocity} {
		got, err := ParseNudge(n.String())
		if err != nil || got != n {
			t.Fatalf("ParseNudge(%q) = %v, %v", n.String(), got, err)
		}
	}
	if _, err := ParseNudge("jerk"); err == nil {
		t.Fatal("expected error")
	}
}
