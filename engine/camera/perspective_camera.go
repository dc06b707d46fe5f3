package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

type perspectiveCameraImpl struct {
	baseCamera

	fov    float32
	aspect float32
	near   float32
	far    float32

	projection mgl32.Mat4
}

// PerspectiveCamera is a Camera with a fixed 45 degree vertical field of view.
// The view matrix is cached and rebuilt on SetView; the projection is fixed at construction.
type PerspectiveCamera interface {
	Camera

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32
}

var _ PerspectiveCamera = &perspectiveCameraImpl{}

// NewPerspectiveCamera creates a perspective camera looking from position toward target.
//
// Parameters:
//   - position: world-space eye position
//   - target: world-space look-at point
//   - aspect: viewport aspect ratio (width / height), must be > 0
//   - near: near clipping plane distance, must be >= 0
//   - far: far clipping plane distance, must be > near
//   - options: functional options to configure the camera
//
// Returns:
//   - PerspectiveCamera: the newly created camera
//   - error: ErrInvalidClipPlanes or ErrInvalidAspect when the parameters cannot form a projection
func NewPerspectiveCamera(position, target mgl32.Vec3, aspect, near, far float32, options ...CameraBuilderOption) (PerspectiveCamera, error) {
	if err := validatePerspective(aspect, near, far); err != nil {
		return nil, err
	}
	c := &perspectiveCameraImpl{
		baseCamera: newBaseCamera(position, target, options),
		fov:        common.DefaultFovY,
		aspect:     aspect,
		near:       near,
		far:        far,
	}
	c.projection = mgl32.Perspective(c.fov, c.aspect, c.near, c.far)
	return c, nil
}

// MustNewPerspectiveCamera is like NewPerspectiveCamera but panics on invalid parameters.
//
// Parameters:
//   - position: world-space eye position
//   - target: world-space look-at point
//   - aspect: viewport aspect ratio (width / height)
//   - near: near clipping plane distance
//   - far: far clipping plane distance
//   - options: functional options to configure the camera
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func MustNewPerspectiveCamera(position, target mgl32.Vec3, aspect, near, far float32, options ...CameraBuilderOption) PerspectiveCamera {
	c, err := NewPerspectiveCamera(position, target, aspect, near, far, options...)
	if err != nil {
		panic(err)
	}
	return c
}

func validatePerspective(aspect, near, far float32) error {
	if near < 0 || near >= far {
		return fmt.Errorf("%w: near=%g far=%g", ErrInvalidClipPlanes, near, far)
	}
	if aspect <= 0 {
		return fmt.Errorf("%w: %g", ErrInvalidAspect, aspect)
	}
	return nil
}

func (c *perspectiveCameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.view
}

func (c *perspectiveCameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *perspectiveCameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *perspectiveCameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *perspectiveCameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *perspectiveCameraImpl) SetView(position, target mgl32.Vec3) {
	c.setView(position, target)
}

func (c *perspectiveCameraImpl) Fov() float32 {
	return c.fov
}

func (c *perspectiveCameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *perspectiveCameraImpl) Near() float32 {
	return c.near
}

func (c *perspectiveCameraImpl) Far() float32 {
	return c.far
}
