package material

import (
	"math/rand"

	"github.com/sfriedel/go-sphere-tracer/pkg/core"
)

// scatterLambertian bounces the ray in a random direction biased toward the
// surface normal: normal + random unit vector.
func (m Material) scatterLambertian(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := hit.Normal.Add(core.RandomUnitVector(random))

	// The random unit vector can nearly cancel the normal, leaving a
	// degenerate direction that would break later normalization.
	if scatterDirection.LengthSquared() < 1e-8 {
		scatterDirection = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scatterDirection),
		Attenuation: m.Albedo,
	}, true
}
