package window

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

// Window is a platform window used to size screen cameras.
// Width and Height report the framebuffer size in pixels, which differs from the
// requested size on high-DPI displays.
type Window interface {
	// Title returns the window title.
	//
	// Returns:
	//   - string: the title text
	Title() string

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// PollEvents processes pending window events without blocking.
	//
	// Returns:
	//   - bool: true while the window has not been asked to close
	PollEvents() bool

	// Close destroys the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never opened
	Close() error
}

// engineWindow holds window configuration and the platform handle.
type engineWindow struct {
	title   string
	width   int
	height  int
	visible bool

	onResize func(width, height int)

	internalWindow *glfwWindow
}

var _ Window = &engineWindow{}

// NewWindow opens a platform window. Must be called from the main goroutine.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the opened window
//   - error: error if the platform layer fails to initialize or create the window
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)
	if w.width <= 0 || w.height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", w.width, w.height)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, err
	}
	return w, nil
}

// newEngineWindow applies defaults and options without touching the platform layer.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:   "Oxy Camera",
		width:   1280,
		height:  720,
		visible: true,
	}
	for _, option := range options {
		option(w)
	}
	return w
}

// NewScreenCamera builds a screen camera sized to the window's current framebuffer.
// The camera does not follow later resizes; rebuild it from the resize callback.
//
// Parameters:
//   - w: the window to size from
//   - position: world-space eye position
//   - target: world-space look-at point
//   - options: functional options to configure the camera
//
// Returns:
//   - camera.ScreenCamera: the sized camera
//   - error: error if the framebuffer has no area (e.g. a minimized window)
func NewScreenCamera(w Window, position, target mgl32.Vec3, options ...camera.CameraBuilderOption) (camera.ScreenCamera, error) {
	return camera.NewScreenCamera(position, target, w.Width(), w.Height(), options...)
}

func (w *engineWindow) Title() string {
	return w.title
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) PollEvents() bool {
	return platformPollEvents(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

// resize records a new framebuffer size and notifies the resize callback.
func (w *engineWindow) resize(width, height int) {
	w.width = width
	w.height = height
	if w.onResize != nil {
		w.onResize(width, height)
	}
}
