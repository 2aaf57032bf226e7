package scene

import (
	"fmt"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
	"github.com/akopec/go-whitted-raytracer/pkg/geometry"
	"github.com/akopec/go-whitted-raytracer/pkg/loaders"
)

// NewDefaultScene creates the default scene: a huge gray ground sphere, four
// shiny spheres in front of the camera, and one emissive light sphere above.
// When texturePath is non-empty the center sphere gets that texture.
func NewDefaultScene(texturePath string) (*Scene, error) {
	s := New(
		geometry.NewSphere(core.NewVec3(0, -10004, -20), 10000, core.NewVec3(0.20, 0.20, 0.20), 0, 0),
	)

	center := geometry.NewSphere(core.NewVec3(0, 0, -20), 4, core.NewVec3(1.00, 0.32, 0.36), 1, 0.5)
	if texturePath != "" {
		tex, err := loaders.LoadTexture(texturePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load sphere texture: %w", err)
		}
		center.Texture = tex
	}
	s.Add(center)

	s.Add(geometry.NewSphere(core.NewVec3(5, -1, -15), 2, core.NewVec3(0.90, 0.76, 0.46), 1, 0))
	s.Add(geometry.NewSphere(core.NewVec3(5, 0, -25), 3, core.NewVec3(0.65, 0.77, 0.97), 1, 0))
	s.Add(geometry.NewSphere(core.NewVec3(-5.5, 0, -15), 3, core.NewVec3(0.90, 0.90, 0.90), 1, 0))

	// Light
	s.Add(geometry.NewLightSphere(core.NewVec3(0, 20, -30), 3, core.NewVec3(3, 3, 3)))

	return s, nil
}

// NewDiffuseScene creates an all-diffuse variant of the default scene: the
// same layout with every reflectivity and transparency set to zero, so the
// result is independent of recursion depth.
func NewDiffuseScene() *Scene {
	return New(
		geometry.NewSphere(core.NewVec3(0, -10004, -20), 10000, core.NewVec3(0.20, 0.20, 0.20), 0, 0),
		geometry.NewSphere(core.NewVec3(0, 0, -20), 4, core.NewVec3(1.00, 0.32, 0.36), 0, 0),
		geometry.NewSphere(core.NewVec3(5, -1, -15), 2, core.NewVec3(0.90, 0.76, 0.46), 0, 0),
		geometry.NewSphere(core.NewVec3(5, 0, -25), 3, core.NewVec3(0.65, 0.77, 0.97), 0, 0),
		geometry.NewSphere(core.NewVec3(-5.5, 0, -15), 3, core.NewVec3(0.90, 0.90, 0.90), 0, 0),
		geometry.NewLightSphere(core.NewVec3(0, 20, -30), 3, core.NewVec3(3, 3, 3)),
	)
}
