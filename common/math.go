package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DefaultFovY is the vertical field of view shared by every perspective camera, in radians (45 degrees).
const DefaultFovY = float32(math.Pi / 4)

// WorldUp is the default up hint used when building look-at view matrices.
var WorldUp = mgl32.Vec3{0, 1, 0}

// ClipSpaceCorrection remaps OpenGL clip depth [-1, 1] into WebGPU clip depth [0, 1].
// Left-multiply a projection matrix by it before uploading to a WebGPU shader: z' = 0.5*z + 0.5*w.
// The matrix is stored in column-major order.
var ClipSpaceCorrection = mgl32.Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// ProjectPoint transforms a point by a 4x4 matrix and performs the homogeneous divide.
// A point that lands on w == 0 (e.g. the eye under a perspective projection) is returned undivided.
//
// Parameters:
//   - m: the transform (column-major)
//   - p: the point to transform (w is taken as 1)
//
// Returns:
//   - mgl32.Vec3: the transformed point in normalized coordinates
func ProjectPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	v := m.Mul4x1(p.Vec4(1))
	if v.W() == 0 {
		return v.Vec3()
	}
	return v.Vec3().Mul(1 / v.W())
}

// Vec3ToArray copies a vector into a plain array, the layout used by GPU structs and config files.
//
// Parameters:
//   - v: the vector to copy
//
// Returns:
//   - [3]float32: the vector components
func Vec3ToArray(v mgl32.Vec3) [3]float32 {
	return [3]float32{v[0], v[1], v[2]}
}
