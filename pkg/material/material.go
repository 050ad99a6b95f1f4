package material

import (
	"math/rand"

	"github.com/sfriedel/go-sphere-tracer/pkg/core"
)

// Kind identifies a material variant. The set is closed: the renderer
// switches exhaustively over these three values.
type Kind int

const (
	KindLambertian Kind = iota
	KindMetal
	KindDielectric
)

// Material is a tagged union over the three supported surface models.
// Only the fields relevant to the Kind are meaningful; the zero values of
// the rest are ignored. Materials are immutable values, copied into every
// hit record.
type Material struct {
	Kind            Kind
	Albedo          core.Vec3 // Lambertian and Metal reflectance per channel
	Fuzz            float64   // Metal reflection cone width
	RefractiveIndex float64   // Dielectric index of refraction
}

// NewLambertian creates a perfectly diffuse material
func NewLambertian(albedo core.Vec3) Material {
	return Material{Kind: KindLambertian, Albedo: albedo}
}

// NewMetal creates a metallic material. Fuzz is accepted as given: values
// above 1 widen the scatter cone beyond the reflection hemisphere and darken
// the surface through absorption rather than being clamped.
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a transparent material like glass
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// Scatter computes how a ray bounces off a surface with this material.
// It returns false when the ray is absorbed, which for this material set
// only happens on fuzzy metal.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	switch m.Kind {
	case KindMetal:
		return m.scatterMetal(rayIn, hit, random)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, random)
	default:
		return m.scatterLambertian(rayIn, hit, random)
	}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, oriented against the ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
