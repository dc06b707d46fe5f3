package window

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, "Oxy Camera", w.Title())
	assert.Equal(t, 1280, w.Width())
	assert.Equal(t, 720, w.Height())
	assert.True(t, w.visible)
}

func TestNewEngineWindowOptions(t *testing.T) {
	w := newEngineWindow(
		WithTitle("probe"),
		WithWidth(640),
		WithHeight(480),
		WithVisible(false),
	)
	assert.Equal(t, "probe", w.Title())
	assert.Equal(t, 640, w.Width())
	assert.Equal(t, 480, w.Height())
	assert.False(t, w.visible)
}

func TestNewWindowRejectsEmptySize(t *testing.T) {
	_, err := NewWindow(WithWidth(0))
	assert.Error(t, err)
}

func TestResizeNotifiesCallback(t *testing.T) {
	w := newEngineWindow()
	var gotW, gotH int
	w.SetResizeCallback(func(width, height int) {
		gotW, gotH = width, height
	})

	w.resize(1920, 1080)

	assert.Equal(t, 1920, gotW)
	assert.Equal(t, 1080, gotH)
	assert.Equal(t, 1920, w.Width())
	assert.Equal(t, 1080, w.Height())
}

func TestUnopenedWindow(t *testing.T) {
	w := newEngineWindow()
	assert.False(t, w.PollEvents())
	assert.Error(t, w.Close())
}

func TestNewScreenCameraUsesFramebufferSize(t *testing.T) {
	w := newEngineWindow(WithWidth(800), WithHeight(600))

	cam, err := NewScreenCamera(w, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	require.NoError(t, err)
	assert.Equal(t, 800, cam.ScreenWidth())
	assert.Equal(t, 600, cam.ScreenHeight())

	w.resize(0, 0)
	_, err = NewScreenCamera(w, mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	assert.Error(t, err)
}
