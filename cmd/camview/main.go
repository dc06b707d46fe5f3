package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/Carmen-Shannon/oxy-camera/engine/camera"
	"github.com/Carmen-Shannon/oxy-camera/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

func main() {
	configPath := flag.String("config", "", "camera YAML file")
	position := flag.String("position", "", "override eye position as x,y,z (applied with SetView)")
	target := flag.String("target", "", "override look-at target as x,y,z (applied with SetView)")
	useWindow := flag.Bool("window", false, "size a screen camera from a hidden GLFW window instead of the config")
	flag.Parse()

	cam, err := loadCamera(*configPath, *useWindow)
	if err != nil {
		log.Fatalf("camview: %v", err)
	}

	if *position != "" || *target != "" {
		p, t := cam.Position(), cam.Target()
		if *position != "" {
			if p, err = parseVec3(*position); err != nil {
				log.Fatalf("camview: -position: %v", err)
			}
		}
		if *target != "" {
			if t, err = parseVec3(*target); err != nil {
				log.Fatalf("camview: -target: %v", err)
			}
		}
		cam.SetView(p, t)
	}

	report(cam)
}

// loadCamera builds the camera from the config file, or from a hidden window when useWindow is set.
// With a window, the config (if any) still supplies position, target and up.
func loadCamera(configPath string, useWindow bool) (camera.Camera, error) {
	cfg := camera.Config{Position: [3]float32{0, 0, 5}, Aspect: 1}
	if configPath != "" {
		var err error
		if cfg, err = camera.LoadConfig(configPath); err != nil {
			return nil, err
		}
		log.Printf("loaded %s camera from %s", common.Coalesce(cfg.Kind, camera.KindPerspective), configPath)
	}
	if !useWindow {
		return cfg.Build()
	}

	win, err := window.NewWindow(window.WithTitle("camview"), window.WithVisible(false))
	if err != nil {
		return nil, err
	}
	defer win.Close()
	log.Printf("framebuffer %dx%d", win.Width(), win.Height())

	var options []camera.CameraBuilderOption
	if cfg.Up != nil {
		options = append(options, camera.WithUp(cfg.Up[0], cfg.Up[1], cfg.Up[2]))
	}
	return window.NewScreenCamera(win, mgl32.Vec3(cfg.Position), mgl32.Vec3(cfg.Target), options...)
}

func report(cam camera.Camera) {
	log.Printf("position %v target %v up %v", cam.Position(), cam.Target(), cam.Up())
	switch c := cam.(type) {
	case camera.PerspectiveCamera:
		log.Printf("perspective fov=%.1fdeg aspect=%g near=%g far=%g", mgl32.RadToDeg(c.Fov()), c.Aspect(), c.Near(), c.Far())
	case camera.OrthographicCamera:
		log.Printf("orthographic %gx%gx%g", c.Width(), c.Height(), c.Depth())
	case camera.ScreenCamera:
		log.Printf("screen %dx%d", c.ScreenWidth(), c.ScreenHeight())
	}

	fmt.Printf("view:\n%v\n", cam.ViewMatrix())
	fmt.Printf("projection:\n%v\n", cam.ProjectionMatrix())
	fmt.Printf("view-projection:\n%v\n", camera.ViewProjection(cam))
	fmt.Printf("target in clip space: %v\n", common.ProjectPoint(camera.ViewProjection(cam), cam.Target()))

	uniform := camera.NewGPUCameraUniform(cam)
	log.Printf("gpu uniform: %d bytes", len(uniform.Marshal()))
}

// parseVec3 parses "x,y,z".
func parseVec3(s string) (mgl32.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var v mgl32.Vec3
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 32)
		if err != nil {
			return mgl32.Vec3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}
