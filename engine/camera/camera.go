package camera

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidClipPlanes is returned when a perspective camera is built with near < 0, near > far, or near == far.
	ErrInvalidClipPlanes = errors.New("camera: invalid clip planes")

	// ErrInvalidAspect is returned when a perspective camera is built with a non-positive aspect ratio.
	ErrInvalidAspect = errors.New("camera: invalid aspect ratio")

	// ErrInvalidExtent is returned when an orthographic camera is built with a non-positive width, height or depth.
	ErrInvalidExtent = errors.New("camera: invalid orthographic extent")

	// ErrInvalidScreenSize is returned when a screen camera is built with a non-positive width or height.
	ErrInvalidScreenSize = errors.New("camera: invalid screen size")
)

// Camera defines the capability shared by every camera variant.
// A camera owns its eye position and look-at target and exposes the
// world-to-camera (view) and camera-to-clip (projection) transforms derived from them.
//
// All matrices use the OpenGL clip convention (depth in [-1, 1]) and column-major storage.
type Camera interface {
	// ViewMatrix returns the current world-to-camera transform.
	// It always reflects the most recent SetView call.
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the camera-to-clip transform built from the parameters fixed at construction.
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// Position returns the world-space eye position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Position() mgl32.Vec3

	// Target returns the world-space look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: the look-at target
	Target() mgl32.Vec3

	// Up returns the up hint used to orient the view matrix.
	//
	// Returns:
	//   - mgl32.Vec3: the up hint
	Up() mgl32.Vec3

	// SetView replaces the eye position and look-at target.
	// The view matrix reflects the new pair as soon as SetView returns.
	//
	// Parameters:
	//   - position: new world-space eye position
	//   - target: new world-space look-at point
	SetView(position, target mgl32.Vec3)
}

// ViewProjection returns the combined projection * view matrix of a camera.
//
// Parameters:
//   - c: the camera to read
//
// Returns:
//   - mgl32.Mat4: the view-projection matrix
func ViewProjection(c Camera) mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// baseCamera holds the state every variant shares: the eye, the target, the up hint
// and the cached view matrix. Variants embed it by value.
type baseCamera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3
	view     mgl32.Mat4
}

func newBaseCamera(position, target mgl32.Vec3, options []CameraBuilderOption) baseCamera {
	b := applyOptions(options)
	b.setView(position, target)
	return b
}

// applyOptions returns a baseCamera with defaults and options applied but no view computed.
func applyOptions(options []CameraBuilderOption) baseCamera {
	b := baseCamera{
		up:   common.WorldUp,
		view: mgl32.Ident4(),
	}
	for _, option := range options {
		option(&b)
	}
	return b
}

// setView stores the new pair and rebuilds the cached view matrix before returning.
func (b *baseCamera) setView(position, target mgl32.Vec3) {
	b.position = position
	b.target = target
	b.view = lookAt(position, target, b.up)
}

// lookAt builds a right-handed view matrix. The up hint is used as given; a view direction
// parallel to it (or position == target) has no defined orientation.
func lookAt(position, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(position, target, up)
}
