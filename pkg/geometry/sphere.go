package geometry

import (
	"math"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
	"github.com/akopec/go-whitted-raytracer/pkg/texture"
)

// Sphere is the scene primitive: a center and radius plus the material
// attributes the shading engine reads. Spheres are built once at scene
// construction time and never mutated afterwards.
type Sphere struct {
	Center        core.Vec3
	Radius        float64
	Radius2       float64 // cached Radius*Radius
	SurfaceColor  core.Vec3
	EmissionColor core.Vec3
	Reflectivity  float64 // [0,1]
	Transparency  float64 // [0,1]
	Texture       *texture.Texture
}

// NewSphere creates a non-emissive sphere
func NewSphere(center core.Vec3, radius float64, surfaceColor core.Vec3, reflectivity, transparency float64) *Sphere {
	return &Sphere{
		Center:       center,
		Radius:       radius,
		Radius2:      radius * radius,
		SurfaceColor: surfaceColor,
		Reflectivity: reflectivity,
		Transparency: transparency,
	}
}

// NewTexturedSphere creates a sphere whose surface color comes from a texture
func NewTexturedSphere(center core.Vec3, radius float64, surfaceColor core.Vec3, reflectivity, transparency float64, tex *texture.Texture) *Sphere {
	s := NewSphere(center, radius, surfaceColor, reflectivity, transparency)
	s.Texture = tex
	return s
}

// NewLightSphere creates an emissive sphere acting as a point-like light at its center
func NewLightSphere(center core.Vec3, radius float64, emission core.Vec3) *Sphere {
	s := NewSphere(center, radius, core.NewVec3(0, 0, 0), 0, 0)
	s.EmissionColor = emission
	return s
}

// Emissive reports whether the sphere acts as a light source
func (s *Sphere) Emissive() bool {
	return s.EmissionColor.X > 0
}

// Intersect solves the ray-sphere quadratic analytically and returns the two
// parametric distances t0 <= t1 along the ray. Spheres whose center lies
// behind the ray origin are rejected outright (tca < 0), which is how the
// shading engine uses it: secondary rays start on a surface looking away.
func (s *Sphere) Intersect(origin, direction core.Vec3) (t0, t1 float64, ok bool) {
	l := s.Center.Subtract(origin)
	tca := l.Dot(direction)
	if tca < 0 {
		return 0, 0, false
	}
	d2 := l.Dot(l) - tca*tca
	if d2 > s.Radius2 {
		return 0, 0, false
	}
	thc := math.Sqrt(s.Radius2 - d2)
	return tca - thc, tca + thc, true
}

// ColorAt returns the surface color at a hit point. Without a texture this
// is the flat surface color; with one, the point is projected onto a
// longitude/latitude parameterization and sampled nearest-neighbor.
func (s *Sphere) ColorAt(point core.Vec3) core.Vec3 {
	if s.Texture == nil {
		return s.SurfaceColor
	}
	local := point.Subtract(s.Center)
	u := math.Atan2(local.Z, local.X)/(2*math.Pi) + 0.5
	v := math.Acos(local.Y/s.Radius) / math.Pi
	x := int(u * float64(s.Texture.Width))
	y := int(v * float64(s.Texture.Height))
	return s.Texture.At(x, y)
}
