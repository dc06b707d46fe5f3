package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraBuilderOption is a functional option applied to any camera variant at construction.
type CameraBuilderOption func(*baseCamera)

// WithUp sets the up hint used to orient the view matrix. Defaults to (0, 1, 0).
// The hint is used as given and is not derived from the view direction.
//
// Parameters:
//   - x, y, z: up hint components
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's up hint
func WithUp(x, y, z float32) CameraBuilderOption {
	return func(b *baseCamera) {
		b.up = mgl32.Vec3{x, y, z}
	}
}
