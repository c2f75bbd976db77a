package geom

import "github.com/go-gl/mathgl/mgl64"

// RotateX rotates every point of the cloud around the X axis.
func RotateX(c Cloud, angle float64) Cloud {
	return transform(c, mgl64.Rotate3DX(angle))
}

// RotateY rotates every point of the cloud around the Y axis
func RotateY(c Cloud, angle float64) Cloud {
	return transform(c, mgl64.Rotate3DY(angle))
}

// RotateZ rotates every point of the cloud around the Z axis
func RotateZ(c Cloud, angle float64) Cloud {
	return transform(c, mgl64.Rotate3DZ(angle))
}

// RotateXYZ applies RotateX, RotateY and RotateZ in that order. The order
// matters: rotations about different axes do not commute.
func RotateXYZ(c Cloud, ax, ay, az float64) Cloud {
	m := mgl64.Rotate3DZ(az).Mul3(mgl64.Rotate3DY(ay)).Mul3(mgl64.Rotate3DX(ax))
	return transform(c, m)
}

func transform(c Cloud, m mgl64.Mat3) Cloud {
	out := make(Cloud, len(c))
	for i, p := range c {
		out[i] = p.WithVec(m.Mul3x1(p.Vec()))
	}
	return out
}
