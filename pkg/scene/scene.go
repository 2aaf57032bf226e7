package scene

import (
	"github.com/akopec/go-whitted-raytracer/pkg/geometry"
)

// Scene holds the ordered sphere list. The order matters: nearest-hit and
// occlusion searches iterate in list order and the first minimum found wins
// ties, keeping renders reproducible. The scene is read-only during
// rendering and shared by all shading invocations.
type Scene struct {
	Spheres []*geometry.Sphere
}

// New creates a scene from the given spheres
func New(spheres ...*geometry.Sphere) *Scene {
	return &Scene{Spheres: spheres}
}

// Add appends a sphere to the scene
func (s *Scene) Add(sphere *geometry.Sphere) {
	s.Spheres = append(s.Spheres, sphere)
}
