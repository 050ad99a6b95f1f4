package scene

import (
	"math/rand"

	"github.com/sfriedel/go-sphere-tracer/pkg/core"
	"github.com/sfriedel/go-sphere-tracer/pkg/geometry"
	"github.com/sfriedel/go-sphere-tracer/pkg/material"
	"github.com/sfriedel/go-sphere-tracer/pkg/renderer"
)

// Material weights for the small random spheres: 80% diffuse, 15% metal,
// the remaining 5% glass.
const (
	diffuseWeight = 0.8
	metalWeight   = 0.95
)

// NewCoverScene creates the randomized sphere showcase: a large ground
// sphere, a grid of small spheres with randomly drawn materials, and three
// large spheres showing off each material kind. The provided generator
// drives all geometry and material randomness, so a seeded generator yields
// a reproducible scene.
func NewCoverScene(random *rand.Rand) *Scene {
	s := NewScene(
		renderer.DefaultCameraConfig(),
		core.NewVec3(0.5, 0.7, 1.0), // sky blue at the zenith
		core.NewVec3(1.0, 1.0, 1.0), // white at the horizon
	)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Spheres = append(s.Spheres, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Small spheres scattered on a jittered grid, skipping positions that
	// would overlap the showcase metal sphere at (4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			s.Spheres = append(s.Spheres, geometry.NewSphere(center, 0.2, randomMaterial(random)))
		}
	}

	// The three showcase spheres: glass, diffuse, and polished metal
	s.Spheres = append(s.Spheres,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}

// randomMaterial draws a material for a small sphere using the cover-scene weights
func randomMaterial(random *rand.Rand) material.Material {
	choose := random.Float64()

	switch {
	case choose < diffuseWeight:
		albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
		return material.NewLambertian(albedo)
	case choose < metalWeight:
		albedo := core.RandomVec3Range(0.5, 1, random)
		fuzz := 0.5 * random.Float64()
		return material.NewMetal(albedo, fuzz)
	default:
		return material.NewDielectric(1.5)
	}
}
