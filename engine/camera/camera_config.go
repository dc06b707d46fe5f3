package camera

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Camera kinds accepted by Config.Kind.
const (
	KindPerspective  = "perspective"
	KindOrthographic = "orthographic"
	KindScreen       = "screen"
)

const (
	defaultConfigNear float32 = 0.1
	defaultConfigFar  float32 = 1000.0
)

// ErrUnknownKind is returned when a Config names a camera kind that does not exist.
var ErrUnknownKind = errors.New("camera: unknown kind")

// Config describes a camera in a YAML document.
// Fields that do not apply to the chosen kind are ignored.
type Config struct {
	Kind     string      `yaml:"kind"`
	Position [3]float32  `yaml:"position"`
	Target   [3]float32  `yaml:"target"`
	Up       *[3]float32 `yaml:"up"`

	// perspective
	Aspect float32  `yaml:"aspect"`
	Near   *float32 `yaml:"near"`
	Far    *float32 `yaml:"far"`

	// orthographic
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
	Depth  float32 `yaml:"depth"`

	// screen
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
}

// ParseConfig decodes a YAML camera description.
//
// Parameters:
//   - data: the YAML document
//
// Returns:
//   - Config: the decoded config
//   - error: error if the document is malformed
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("camera: unmarshal config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML camera description from disk.
//
// Parameters:
//   - path: the file to read
//
// Returns:
//   - Config: the decoded config
//   - error: error if the file cannot be read or decoded
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("camera: load %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("camera: load %s: %w", path, err)
	}
	return cfg, nil
}

// Build constructs the camera the config describes. Kind defaults to perspective;
// perspective near/far default to 0.1 and 1000 when omitted.
//
// Returns:
//   - Camera: the constructed camera
//   - error: ErrUnknownKind or a wrapped construction error
func (cfg Config) Build() (Camera, error) {
	position := mgl32.Vec3(cfg.Position)
	target := mgl32.Vec3(cfg.Target)

	var options []CameraBuilderOption
	if cfg.Up != nil {
		options = append(options, WithUp(cfg.Up[0], cfg.Up[1], cfg.Up[2]))
	}

	switch kind := common.Coalesce(cfg.Kind, KindPerspective); kind {
	case KindPerspective:
		near, far := defaultConfigNear, defaultConfigFar
		if cfg.Near != nil {
			near = *cfg.Near
		}
		if cfg.Far != nil {
			far = *cfg.Far
		}
		c, err := NewPerspectiveCamera(position, target, cfg.Aspect, near, far, options...)
		if err != nil {
			return nil, fmt.Errorf("camera: build %s: %w", kind, err)
		}
		return c, nil
	case KindOrthographic:
		c, err := NewOrthographicCamera(position, target, cfg.Width, cfg.Height, cfg.Depth, options...)
		if err != nil {
			return nil, fmt.Errorf("camera: build %s: %w", kind, err)
		}
		return c, nil
	case KindScreen:
		c, err := NewScreenCamera(position, target, cfg.ScreenWidth, cfg.ScreenHeight, options...)
		if err != nil {
			return nil, fmt.Errorf("camera: build %s: %w", kind, err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
