package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/sfriedel/go-sphere-tracer/pkg/core"
	"github.com/sfriedel/go-sphere-tracer/pkg/geometry"
	"github.com/sfriedel/go-sphere-tracer/pkg/material"
)

// Shadow-acne epsilon: scattered rays ignore intersections closer than this
// so they do not re-hit the surface they just left.
const tMinEpsilon = 0.001

// rowSeedStride spreads per-row seeds apart so neighbouring rows do not
// share low-entropy generator states.
const rowSeedStride = 0x9E3779B9

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Parallel row workers; <= 0 means runtime.NumCPU()
	Seed            int64 // Base seed for per-row generators
}

// DefaultSamplingConfig returns the reference render parameters
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 50,
		MaxDepth:        20,
		NumWorkers:      runtime.NumCPU(),
		Seed:            time.Now().UnixNano(),
	}
}

// Scene is what the raytracer needs from a scene. Declared here rather than
// in the scene package to keep the import direction one-way.
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetSpheres() []geometry.Sphere
}

// Raytracer renders a scene into a framebuffer of averaged radiance values
type Raytracer struct {
	scene  Scene
	width  int
	height int
	config SamplingConfig
}

// NewRaytracer creates a new raytracer with default sampling configuration
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return &Raytracer{
		scene:  scene,
		width:  width,
		height: height,
		config: DefaultSamplingConfig(),
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// hitWorld finds the closest intersection along the ray, if any. The scan is
// linear over all spheres; each test narrows the search interval to the
// closest hit found so far, so the result is the nearest intersection with
// first-in-order winning exact ties.
func (rt *Raytracer) hitWorld(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closestHit material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, sphere := range rt.scene.GetSpheres() {
		if hit, isHit := sphere.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// backgroundGradient returns the sky color for a ray that escapes the scene,
// blending from the bottom color at the horizon to the top color at the zenith
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the y-component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rayColor returns the radiance carried back along a ray, bouncing it off
// the scene until it escapes, is absorbed, or the depth budget runs out
func (rt *Raytracer) rayColor(r core.Ray, depth int, random *rand.Rand) core.Vec3 {
	// Paths cut off at the bounce limit contribute no light
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.hitWorld(r, tMinEpsilon, math.Inf(1))
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, hit, random)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(rt.rayColor(scatter.Scattered, depth-1, random))
}

// renderRow renders one image row into the framebuffer. Image row 0 is the
// top of the picture while the camera's t axis increases upward, hence the
// vertical flip.
func (rt *Raytracer) renderRow(y int, framebuffer []core.Vec3, random *rand.Rand) {
	camera := rt.scene.GetCamera()
	flipY := float64(rt.height - 1 - y)

	for x := 0; x < rt.width; x++ {
		colorAccum := core.Vec3{}

		for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
			s := (float64(x) + random.Float64()) / float64(rt.width)
			t := (flipY + random.Float64()) / float64(rt.height)

			ray := camera.GetRay(s, t, random)
			colorAccum = colorAccum.Add(rt.rayColor(ray, rt.config.MaxDepth, random))
		}

		// Average, gamma-2 correct, and clamp into displayable range
		colorVec := colorAccum.Multiply(1.0 / float64(rt.config.SamplesPerPixel))
		colorVec = core.NewVec3(math.Sqrt(colorVec.X), math.Sqrt(colorVec.Y), math.Sqrt(colorVec.Z))
		framebuffer[y*rt.width+x] = colorVec.Clamp(0.0, 0.999)
	}
}

// RenderPass renders the full image and returns the framebuffer in row-major
// order from the image top, along with statistics about the pass.
//
// Rows are distributed over a fixed pool of workers. Each row is rendered
// start to finish by one worker with its own random generator seeded from
// the configured base seed and the row index, so the image content does not
// depend on how rows land on workers. Workers write only to the pixels of
// the rows they own; the scene and camera are read-only, so no locking is
// needed anywhere in the loop.
func (rt *Raytracer) RenderPass() ([]core.Vec3, RenderStats) {
	start := time.Now()
	framebuffer := make([]core.Vec3, rt.width*rt.height)

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	rows := make(chan int, rt.height)
	for y := 0; y < rt.height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				random := rand.New(rand.NewSource(rt.config.Seed + int64(y)*rowSeedStride))
				rt.renderRow(y, framebuffer, random)
			}
		}()
	}
	wg.Wait()

	stats := RenderStats{
		Width:        rt.width,
		Height:       rt.height,
		TotalPixels:  rt.width * rt.height,
		TotalSamples: rt.width * rt.height * rt.config.SamplesPerPixel,
		Rows:         rt.height,
		Workers:      numWorkers,
		Elapsed:      time.Since(start),
	}

	return framebuffer, stats
}
