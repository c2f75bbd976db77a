package geom

import (
	"image/color"
	"testing"
)

func TestCubeLengthIndependentOfFill(t *testing.T) {
	for _, samples := range []int{2, 20, 21} {
		shell := Cube(500, samples, FillShell)
		volume := Cube(500, samples, FillVolume)
		want := samples * samples * samples
		if len(shell) != want || len(volume) != want {
			t.Fatalf("samples=%d: shell %d volume %d, want %d", samples, len(shell), len(volume), want)
		}
	}
}

func TestCubeBounds(t *testing.T) {
	c := Cube(500, 20, FillVolume)
	first, last := c[0], c[len(c)-1]
	if first.X != -500 || first.Y != -500 || first.Z != -500 {
		t.Fatalf("first point %+v", first)
	}
	if last.X != 500 || last.Y != 500 || last.Z != 500 {
		t.Fatalf("last point %+v", last)
	}
	step := c[1].Z - c[0].Z
	if want := 1000.0 / 19; step-want > 1e-9 || want-step > 1e-9 {
		t.Fatalf("step %v, want %v", step, want)
	}
}

func TestCubeVolumeAllVisible(t *testing.T) {
	for i, p := range Cube(500, 5, FillVolume) {
		if !p.Visible || p.HasColor() {
			t.Fatalf("point %d: %+v", i, p)
		}
	}
}

func TestCubeShellVisibility(t *testing.T) {
	const n = 5
	c := Cube(500, n, FillShell)
	visible := 0
	for _, p := range c {
		onFace := p.X == -500 || p.X == 500 || p.Y == -500 || p.Y == 500 || p.Z == -500 || p.Z == 500
		if p.Visible != onFace {
			t.Fatalf("point %+v visible=%v onFace=%v", p, p.Visible, onFace)
		}
		if p.Visible {
			visible++
		}
	}
	if want := n*n*n - (n-2)*(n-2)*(n-2); visible != want {
		t.Fatalf("visible %d, want %d", visible, want)
	}
}

func TestCubeShellFacePrecedence(t *testing.T) {
	c := Cube(500, 3, FillShell)
	find := func(x, y, z float64) Point3D {
		for _, p := range c {
			if p.X == x && p.Y == y && p.Z == z {
				return p
			}
		}
		t.Fatalf("no point at %v,%v,%v", x, y, z)
		return Point3D{}
	}
	tests := []struct {
		x, y, z float64
		want    color.RGBA
	}{
		{-500, -500, -500, FaceColors[0]}, // corner: z=min wins
		{500, 500, 500, FaceColors[1]},    // corner: z=max wins
		{-500, -500, 0, FaceColors[2]},    // edge: y=min before x=min
		{0, 500, 0, FaceColors[3]},
		{-500, 0, 0, FaceColors[4]},
		{500, 0, 0, FaceColors[5]},
	}
	for _, tc := range tests {
		if got := find(tc.x, tc.y, tc.z).Color; got != tc.want {
			t.Errorf("(%v,%v,%v): color %v, want %v", tc.x, tc.y, tc.z, got, tc.want)
		}
	}
	if p := find(0, 0, 0); p.Visible {
		t.Errorf("center should be hidden")
	}
}

func TestParseFill(t *testing.T) {
	for _, f := range []Fill{FillShell, FillVolume} {
		got, err := ParseFill(f.String())
		if err != nil || got != f {
			t.Fatalf("ParseFill(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFill("hollow"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestHex(t *testing.T) {
	if got := Hex("#22aa22"); got != (color.RGBA{0x22, 0xaa, 0x22, 0xff}) {
		t.Fatalf("got %v", got)
	}
	for _, bad := range []string{"", "22aa22", "#22aa2", "#zzzzzz"} {
		if got := Hex(bad); got != (color.RGBA{}) {
			t.Errorf("Hex(%q) = %v", bad, got)
		}
	}
}
