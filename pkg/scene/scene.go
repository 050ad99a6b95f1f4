package scene

import (
	"github.com/sfriedel/go-sphere-tracer/pkg/core"
	"github.com/sfriedel/go-sphere-tracer/pkg/geometry"
	"github.com/sfriedel/go-sphere-tracer/pkg/renderer"
)

// Scene is a flat, ordered collection of spheres plus the camera and sky it
// is rendered with. It is built once and never mutated afterwards, so render
// workers share it without synchronization.
type Scene struct {
	Spheres      []geometry.Sphere
	CameraConfig renderer.CameraConfig
	SkyTop       core.Vec3
	SkyBottom    core.Vec3

	camera *renderer.Camera
}

// NewScene creates an empty scene with the given camera and sky colors
func NewScene(cameraConfig renderer.CameraConfig, skyTop, skyBottom core.Vec3) *Scene {
	return &Scene{
		Spheres:      make([]geometry.Sphere, 0),
		CameraConfig: cameraConfig,
		SkyTop:       skyTop,
		SkyBottom:    skyBottom,
		camera:       renderer.NewCamera(cameraConfig),
	}
}

// GetCamera returns the scene's camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.camera
}

// GetBackgroundColors returns the sky gradient colors, zenith first
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.SkyTop, s.SkyBottom
}

// GetSpheres returns the scene's spheres
func (s *Scene) GetSpheres() []geometry.Sphere {
	return s.Spheres
}
