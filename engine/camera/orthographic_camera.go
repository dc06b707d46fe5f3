package camera

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type orthographicCameraImpl struct {
	baseCamera

	width  float32
	height float32
	depth  float32

	projection mgl32.Mat4
}

// OrthographicCamera is a Camera whose projection is a box centered on the eye.
// View-space x in [-width/2, width/2], y in [-height/2, height/2] and z in [-depth/2, depth/2]
// map onto the clip cube; following the OpenGL convention, view-space (w/2, h/2, -d/2) lands on clip (1, 1, 1).
type OrthographicCamera interface {
	Camera

	// Width returns the horizontal extent of the view box.
	//
	// Returns:
	//   - float32: full width in world units
	Width() float32

	// Height returns the vertical extent of the view box.
	//
	// Returns:
	//   - float32: full height in world units
	Height() float32

	// Depth returns the depth extent of the view box.
	//
	// Returns:
	//   - float32: full depth in world units
	Depth() float32
}

var _ OrthographicCamera = &orthographicCameraImpl{}

// NewOrthographicCamera creates an orthographic camera looking from position toward target.
//
// Parameters:
//   - position: world-space eye position
//   - target: world-space look-at point
//   - width, height, depth: full extents of the view box, each must be > 0
//   - options: functional options to configure the camera
//
// Returns:
//   - OrthographicCamera: the newly created camera
//   - error: ErrInvalidExtent when an extent is not positive
func NewOrthographicCamera(position, target mgl32.Vec3, width, height, depth float32, options ...CameraBuilderOption) (OrthographicCamera, error) {
	if width <= 0 || height <= 0 || depth <= 0 {
		return nil, fmt.Errorf("%w: %gx%gx%g", ErrInvalidExtent, width, height, depth)
	}
	c := &orthographicCameraImpl{
		baseCamera: newBaseCamera(position, target, options),
		width:      width,
		height:     height,
		depth:      depth,
	}
	c.projection = mgl32.Ortho(
		-0.5*width, 0.5*width,
		-0.5*height, 0.5*height,
		-0.5*depth, 0.5*depth,
	)
	return c, nil
}

// MustNewOrthographicCamera is like NewOrthographicCamera but panics on invalid extents.
func MustNewOrthographicCamera(position, target mgl32.Vec3, width, height, depth float32, options ...CameraBuilderOption) OrthographicCamera {
	c, err := NewOrthographicCamera(position, target, width, height, depth, options...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *orthographicCameraImpl) ViewMatrix() mgl32.Mat4 {
	return c.view
}

func (c *orthographicCameraImpl) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

func (c *orthographicCameraImpl) Position() mgl32.Vec3 {
	return c.position
}

func (c *orthographicCameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *orthographicCameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *orthographicCameraImpl) SetView(position, target mgl32.Vec3) {
	c.setView(position, target)
}

func (c *orthographicCameraImpl) Width() float32 {
	return c.width
}

func (c *orthographicCameraImpl) Height() float32 {
	return c.height
}

func (c *orthographicCameraImpl) Depth() float32 {
	return c.depth
}
