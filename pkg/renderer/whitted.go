package renderer

import (
	"math"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
	"github.com/akopec/go-whitted-raytracer/pkg/geometry"
	"github.com/akopec/go-whitted-raytracer/pkg/scene"
)

const (
	// DefaultMaxDepth bounds the reflection/refraction recursion
	DefaultMaxDepth = 5
	// Bias offsets secondary ray origins along the normal to avoid
	// immediate self-intersection
	Bias = 1e-4
	// IOR is the fixed index of refraction for transparent spheres
	IOR = 1.1
)

// Background is the color returned when a ray hits nothing. It is an
// out-of-range sentinel, clamped only at image encode time.
var Background = core.NewVec3(2, 2, 2)

// Config contains shading engine configuration
type Config struct {
	MaxDepth int // Maximum recursion depth (0 = DefaultMaxDepth)
	Workers  int // Parallel render workers (0 = runtime.NumCPU())
}

// Whitted is the recursive shading engine. It is a pure function of the
// immutable scene: no invocation mutates scene, sphere, or texture state,
// so concurrent Trace calls are safe without locking.
type Whitted struct {
	scene  *scene.Scene
	config Config
}

// NewWhitted creates a shading engine for the given scene
func NewWhitted(s *scene.Scene, config Config) *Whitted {
	if config.MaxDepth <= 0 {
		config.MaxDepth = DefaultMaxDepth
	}
	return &Whitted{scene: s, config: config}
}

// Trace follows a ray through the scene and returns its color. The direction
// must be normalized. Rays that hit nothing return the Background sentinel.
func (w *Whitted) Trace(origin, direction core.Vec3, depth int) core.Vec3 {
	sphere, tnear := w.nearestHit(origin, direction)
	if sphere == nil {
		return Background
	}

	hit := origin.Add(direction.Multiply(tnear))
	normal := hit.Subtract(sphere.Center).Normalize()

	// Flip the normal when the ray starts inside the sphere; "inside"
	// controls the relative index of refraction below.
	inside := false
	if direction.Dot(normal) > 0 {
		normal = normal.Negate()
		inside = true
	}

	var surfaceColor core.Vec3
	if (sphere.Transparency > 0 || sphere.Reflectivity > 0) && depth < w.config.MaxDepth {
		surfaceColor = w.shadeSpecular(sphere, direction, hit, normal, inside, depth)
	} else {
		surfaceColor = w.shadeDiffuse(sphere, hit, normal)
	}

	return surfaceColor.Add(sphere.EmissionColor)
}

// shadeSpecular computes the fresnel-mixed reflection/refraction contribution
func (w *Whitted) shadeSpecular(sphere *geometry.Sphere, direction, hit, normal core.Vec3, inside bool, depth int) core.Vec3 {
	facingRatio := -direction.Dot(normal)
	// Schlick-like approximation, biased toward full reflectivity at
	// grazing angles
	fresnel := mix(math.Pow(1-facingRatio, 3), 1, 0.1)

	reflDir := reflect(direction, normal).Normalize()
	reflection := w.Trace(hit.Add(normal.Multiply(Bias)), reflDir, depth+1)

	var refraction core.Vec3
	if sphere.Transparency > 0 {
		eta := 1 / IOR
		if inside {
			eta = IOR
		}
		// Total internal reflection leaves no refracted ray; the
		// reflection term above is the whole specular contribution.
		if refrDir, ok := refract(direction, normal, eta); ok {
			refraction = w.Trace(hit.Subtract(normal.Multiply(Bias)), refrDir, depth+1)
		}
	}

	return reflection.Multiply(fresnel).
		Add(refraction.Multiply((1 - fresnel) * sphere.Transparency)).
		MultiplyVec(sphere.ColorAt(hit))
}

// shadeDiffuse computes direct illumination from every emissive sphere with
// a binary shadow test against all other spheres
func (w *Whitted) shadeDiffuse(sphere *geometry.Sphere, hit, normal core.Vec3) core.Vec3 {
	var surfaceColor core.Vec3
	shadowOrigin := hit.Add(normal.Multiply(Bias))

	for i, light := range w.scene.Spheres {
		if !light.Emissive() {
			continue
		}
		lightDir := light.Center.Subtract(hit).Normalize()

		transmission := 1.0
		for j, blocker := range w.scene.Spheres {
			if j == i {
				continue
			}
			if _, _, ok := blocker.Intersect(shadowOrigin, lightDir); ok {
				transmission = 0
				break
			}
		}

		lambert := transmission * math.Max(0, normal.Dot(lightDir))
		surfaceColor = surfaceColor.Add(
			sphere.ColorAt(hit).Multiply(lambert).MultiplyVec(light.EmissionColor))
	}

	return surfaceColor
}

// nearestHit finds the closest intersected sphere along the ray. Ties are
// broken by iteration order: the first sphere at the minimum distance wins.
func (w *Whitted) nearestHit(origin, direction core.Vec3) (*geometry.Sphere, float64) {
	var nearest *geometry.Sphere
	tnear := math.Inf(1)

	for _, sphere := range w.scene.Spheres {
		t0, t1, ok := sphere.Intersect(origin, direction)
		if !ok {
			continue
		}
		if t0 < 0 {
			// Origin is inside the sphere; the far root is the exit point
			t0 = t1
		}
		if t0 < tnear {
			tnear = t0
			nearest = sphere
		}
	}

	return nearest, tnear
}

// mix linearly interpolates between a and b
func mix(a, b, t float64) float64 {
	return b*t + a*(1-t)
}

// reflect mirrors direction about the normal
func reflect(direction, normal core.Vec3) core.Vec3 {
	return direction.Subtract(normal.Multiply(2 * direction.Dot(normal)))
}

// refract bends direction through the surface per Snell's law. The second
// return value is false for total internal reflection, where no refracted
// direction exists.
func refract(direction, normal core.Vec3, eta float64) (core.Vec3, bool) {
	cosi := -normal.Dot(direction)
	k := 1 - eta*eta*(1-cosi*cosi)
	if k < 0 {
		return core.Vec3{}, false
	}
	return direction.Multiply(eta).
		Add(normal.Multiply(eta*cosi - math.Sqrt(k))).
		Normalize(), true
}
