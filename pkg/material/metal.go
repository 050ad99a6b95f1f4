package material

import (
	"math/rand"

	"github.com/sfriedel/go-sphere-tracer/pkg/core"
)

// scatterMetal reflects the incoming ray about the surface normal and
// perturbs it by a random offset scaled by the fuzz parameter.
func (m Material) scatterMetal(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzz > 0 {
		perturbation := core.RandomInUnitSphere(random).Multiply(m.Fuzz)
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)

	// A perturbed ray that ends up below the surface is absorbed. High fuzz
	// values darken the metal this way.
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
