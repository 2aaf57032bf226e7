package texture

import (
	"fmt"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
)

// Texture is a 2D grid of linear RGB samples.
// Pixels are stored row-major: Pixels[y*Width + x].
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// New creates a texture from a row-major pixel slice
func New(width, height int, pixels []core.Vec3) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture dimensions %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("texture pixel count %d does not match %dx%d", len(pixels), width, height)
	}
	return &Texture{Width: width, Height: height, Pixels: pixels}, nil
}

// At samples the texel at (x, y) using nearest-neighbor filtering.
// Indices are clamped into bounds, never wrapped.
func (t *Texture) At(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	}
	if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}
