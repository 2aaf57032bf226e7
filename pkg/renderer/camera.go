package renderer

import (
	"math"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
)

// Camera is a pinhole camera fixed at the origin looking down -Z
type Camera struct {
	width, height int
	angle         float64 // tan(fov/2)
	aspectRatio   float64
	invWidth      float64
	invHeight     float64
}

// NewCamera creates a camera for the given image size and vertical field of
// view in degrees
func NewCamera(width, height int, fov float64) *Camera {
	return &Camera{
		width:       width,
		height:      height,
		angle:       math.Tan(math.Pi * 0.5 * fov / 180),
		aspectRatio: float64(width) / float64(height),
		invWidth:    1 / float64(width),
		invHeight:   1 / float64(height),
	}
}

// Ray builds the normalized primary ray through the center of pixel (x, y)
func (c *Camera) Ray(x, y int) core.Ray {
	xx := (2*(float64(x)+0.5)*c.invWidth - 1) * c.angle * c.aspectRatio
	yy := (1 - 2*(float64(y)+0.5)*c.invHeight) * c.angle
	direction := core.NewVec3(xx, yy, -1).Normalize()
	return core.NewRay(core.NewVec3(0, 0, 0), direction)
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }
