package geom

import (
	"fmt"
	"image/color"
)

// Fill selects how the cube is sampled.
type Fill int

const (
	// FillShell keeps interior points but marks them invisible, and colors each face.
	FillShell Fill = iota
	// FillVolume emits every grid point as visible and uncolored.
	FillVolume
)

func (f Fill) String() string {
	switch f {
	case FillShell:
		return "shell"
	case FillVolume:
		return "volume"
	}
	return fmt.Sprintf("Fill(%d)", int(f))
}

// ParseFill converts "shell" or "volume" into a Fill.
func ParseFill(s string) (Fill, error) {
	switch s {
	case "shell":
		return FillShell, nil
	case "volume":
		return FillVolume, nil
	}
	return 0, fmt.Errorf("unknown fill policy %q", s)
}

// Face colors, in the order faces are tested: z=min, z=max, y=min, y=max, x=min, x=max.
var FaceColors = [6]color.RGBA{
	Hex("#ff0000"),
	Hex("#ffaa00"),
	Hex("#22aa22"),
	Hex("#0000ff"),
	Hex("#ffef00"),
	Hex("#ff00ff"),
}

// Cube samples the cube [-half, half]^3 on a regular grid of samples points per
// axis (step = 2*half/(samples-1)). Points are emitted x-major, then y, then z.
// The length is always samples^3 regardless of fill.
func Cube(half float64, samples int, fill Fill) Cloud {
	if samples < 2 {
		samples = 2
	}
	last := samples - 1
	coord := func(i int) float64 {
		// exact at both ends so face membership never depends on float accumulation
		switch i {
		case 0:
			return -half
		case last:
			return half
		}
		return -half + float64(i)*2*half/float64(last)
	}

	cloud := make(Cloud, 0, samples*samples*samples)
	for i := 0; i < samples; i++ {
		for j := 0; j < samples; j++ {
			for k := 0; k < samples; k++ {
				p := NewPoint3D(coord(i), coord(j), coord(k))
				if fill == FillShell {
					face := faceOf(i, j, k, last)
					if face < 0 {
						p.Visible = false
					} else {
						p.Color = FaceColors[face]
					}
				}
				cloud = append(cloud, p)
			}
		}
	}
	return cloud
}

// faceOf returns the index into FaceColors of the first face the grid index
// lies on, or -1 for interior points.
func faceOf(i, j, k, last int) int {
	switch {
	case k == 0:
		return 0
	case k == last:
		return 1
	case j == 0:
		return 2
	case j == last:
		return 3
	case i == 0:
		return 4
	case i == last:
		return 5
	}
	return -1
}
