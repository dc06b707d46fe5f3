package camera

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuildPerspective(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
kind: perspective
position: [0, 0, 5]
target: [0, 0, 0]
aspect: 2
near: 0.5
far: 50
`))
	require.NoError(t, err)

	c, err := cfg.Build()
	require.NoError(t, err)
	cam, ok := c.(PerspectiveCamera)
	require.True(t, ok)

	want := MustNewPerspectiveCamera(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, 2, 0.5, 50)
	assert.Equal(t, want.ViewMatrix(), cam.ViewMatrix())
	assert.Equal(t, want.ProjectionMatrix(), cam.ProjectionMatrix())
}

func TestConfigBuildPerspectiveDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
position: [0, 0, 5]
aspect: 1
`))
	require.NoError(t, err)

	c, err := cfg.Build()
	require.NoError(t, err)
	cam := c.(PerspectiveCamera)
	assert.Equal(t, float32(0.1), cam.Near())
	assert.Equal(t, float32(1000), cam.Far())
}

func TestConfigBuildPerspectiveExplicitZeroNear(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
position: [0, 0, 5]
aspect: 1
near: 0
far: 10
`))
	require.NoError(t, err)

	c, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, float32(0), c.(PerspectiveCamera).Near())
}

func TestConfigBuildOrthographic(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
kind: orthographic
position: [0, 10, 0]
target: [0, 0, 0]
up: [0, 0, -1]
width: 8
height: 6
depth: 40
`))
	require.NoError(t, err)

	c, err := cfg.Build()
	require.NoError(t, err)
	cam, ok := c.(OrthographicCamera)
	require.True(t, ok)

	assert.Equal(t, mgl32.Vec3{0, 0, -1}, cam.Up())
	assert.Equal(t, float32(8), cam.Width())
	assert.Equal(t, float32(6), cam.Height())
	assert.Equal(t, float32(40), cam.Depth())
	assert.Equal(t, mgl32.LookAtV(mgl32.Vec3{0, 10, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}), cam.ViewMatrix())
}

func TestConfigBuildScreen(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
kind: screen
position: [1, 2, 3]
screen_width: 1280
screen_height: 720
`))
	require.NoError(t, err)

	c, err := cfg.Build()
	require.NoError(t, err)
	cam, ok := c.(ScreenCamera)
	require.True(t, ok)
	assert.Equal(t, 1280, cam.ScreenWidth())
	assert.Equal(t, 720, cam.ScreenHeight())
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position())
}

func TestConfigBuildErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"bad clip planes", "aspect: 1\nnear: 10\nfar: 1\n", ErrInvalidClipPlanes},
		{"missing aspect", "near: 1\nfar: 10\n", ErrInvalidAspect},
		{"missing extent", "kind: orthographic\nwidth: 1\n", ErrInvalidExtent},
		{"missing screen size", "kind: screen\n", ErrInvalidScreenSize},
		{"unknown kind", "kind: fisheye\n", ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.yaml))
			require.NoError(t, err)

			c, err := cfg.Build()
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseConfigMalformed(t *testing.T) {
	_, err := ParseConfig([]byte("position: [1, 2\n"))
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "camera.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: screen\nscreen_width: 640\nscreen_height: 480\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, KindScreen, cfg.Kind)
	assert.Equal(t, 640, cfg.ScreenWidth)
	assert.Equal(t, 480, cfg.ScreenHeight)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
