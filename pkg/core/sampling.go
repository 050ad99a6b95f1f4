package core

import (
	"math"
	"math/rand"
)

// RandomVec3 returns a vector with each component uniform in [0,1)
func RandomVec3(random *rand.Rand) Vec3 {
	return Vec3{random.Float64(), random.Float64(), random.Float64()}
}

// RandomVec3Range returns a vector with each component uniform in [min,max)
func RandomVec3Range(minVal, maxVal float64, random *rand.Rand) Vec3 {
	span := maxVal - minVal
	return Vec3{
		X: minVal + span*random.Float64(),
		Y: minVal + span*random.Float64(),
		Z: minVal + span*random.Float64(),
	}
}

// RandomInUnitSphere generates a random point inside a unit sphere.
// Rejection sampling: the loop has no iteration cap, but each draw succeeds
// with probability π/6 so it terminates almost surely (~2 draws expected).
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(-1, 1, random)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomUnitVector generates a random direction on the unit sphere
func RandomUnitVector(random *rand.Rand) Vec3 {
	return RandomInUnitSphere(random).Normalize()
}

// RandomInUnitDisk generates a random point in a unit disk (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := Vec3{2*random.Float64() - 1, 2*random.Float64() - 1, 0}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n Vec3) Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Refract calculates the refraction of a unit vector uv through a surface
// with normal n using Snell's law. etaiOverEtat is the ratio of refractive
// indices across the boundary.
func Refract(uv, n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}
