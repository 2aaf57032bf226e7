package loaders

import (
	"bufio"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"io"
	"os"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
	"github.com/akopec/go-whitted-raytracer/pkg/texture"
)

// LoadTexture loads a texture image from disk. Binary PPM (P6) is the native
// format; PNG and JPEG are decoded through image.Decode.
func LoadTexture(filename string) (*texture.Texture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file: %w", err)
	}
	defer file.Close()

	br := bufio.NewReader(file)
	magic, err := br.Peek(2)
	if err != nil {
		return nil, fmt.Errorf("failed to read texture header: %w", err)
	}

	if string(magic) == "P6" {
		tex, err := DecodePPM(br)
		if err != nil {
			return nil, fmt.Errorf("failed to decode PPM texture %s: %w", filename, err)
		}
		return tex, nil
	}

	img, _, err := image.Decode(br)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", filename, err)
	}
	return fromImage(img)
}

// fromImage converts a decoded image to a texture with [0, 1] channels
func fromImage(img image.Image) (*texture.Texture, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return texture.New(width, height, pixels)
}

// ToImage converts a row-major color buffer to an 8-bit RGBA image,
// clamping each channel to [0, 1].
func ToImage(width, height int, pixels []core.Vec3) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y*width+x].Clamp(0, 1)
			i := img.PixOffset(x, y)
			img.Pix[i] = uint8(c.X * 255)
			img.Pix[i+1] = uint8(c.Y * 255)
			img.Pix[i+2] = uint8(c.Z * 255)
			img.Pix[i+3] = 255
		}
	}
	return img
}

// WritePNG encodes a row-major color buffer as PNG
func WritePNG(w io.Writer, width, height int, pixels []core.Vec3) error {
	if err := png.Encode(w, ToImage(width, height, pixels)); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
