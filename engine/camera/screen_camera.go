package camera

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// ScreenCameraNear is the fixed near plane of a ScreenCamera.
	ScreenCameraNear float32 = 0.1
	// ScreenCameraFar is the fixed far plane of a ScreenCamera.
	ScreenCameraFar float32 = 1000.0
)

// screenCameraImpl keeps no matrices; both are rebuilt from its fields on every read.
type screenCameraImpl struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	screenWidth  int
	screenHeight int
}

// ScreenCamera is a perspective Camera sized from a viewport in pixels.
// It caches nothing: ViewMatrix and ProjectionMatrix are recomputed on each call,
// with a 45 degree vertical field of view and clip planes at 0.1 and 1000.
type ScreenCamera interface {
	Camera

	// ScreenWidth returns the viewport width in pixels.
	//
	// Returns:
	//   - int: viewport width
	ScreenWidth() int

	// ScreenHeight returns the viewport height in pixels.
	//
	// Returns:
	//   - int: viewport height
	ScreenHeight() int
}

var _ ScreenCamera = &screenCameraImpl{}

// NewScreenCamera creates a screen-sized perspective camera looking from position toward target.
//
// Parameters:
//   - position: world-space eye position
//   - target: world-space look-at point
//   - screenWidth, screenHeight: viewport size in pixels, each must be > 0
//   - options: functional options to configure the camera
//
// Returns:
//   - ScreenCamera: the newly created camera
//   - error: ErrInvalidScreenSize when a dimension is not positive
func NewScreenCamera(position, target mgl32.Vec3, screenWidth, screenHeight int, options ...CameraBuilderOption) (ScreenCamera, error) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidScreenSize, screenWidth, screenHeight)
	}
	b := applyOptions(options)
	return &screenCameraImpl{
		position:     position,
		target:       target,
		up:           b.up,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}, nil
}

func (c *screenCameraImpl) ViewMatrix() mgl32.Mat4 {
	return lookAt(c.position, c.target, c.up)
}

func (c *screenCameraImpl) ProjectionMatrix() mgl32.Mat4 {
	aspect := float32(c.screenWidth) / float32(c.screenHeight)
	return mgl32.Perspective(common.DefaultFovY, aspect, ScreenCameraNear, ScreenCameraFar)
}

func (c *screenCameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *screenCameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *screenCameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *screenCameraImpl) SetView(position, target mgl32.Vec3) {
	c.position = position
	c.target = target
}

func (c *screenCameraImpl) ScreenWidth() int {
	return c.screenWidth
}

func (c *screenCameraImpl) ScreenHeight() int {
	return c.screenHeight
}
