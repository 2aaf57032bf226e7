package loaders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
)

// TestLoadTexture_PNG creates a test PNG and verifies loading
func TestLoadTexture_PNG(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.png")

	// Create a simple 2x2 test image
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 255, G: 0, B: 0, A: 255})
	img.Set(0, 1, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	img.Set(1, 1, color.RGBA{R: 0, G: 0, B: 255, A: 255})

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	f.Close()

	tex, err := LoadTexture(testFile)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}

	if tex.Width != 2 || tex.Height != 2 {
		t.Errorf("Expected 2x2 texture, got %dx%d", tex.Width, tex.Height)
	}

	checkColor := func(name string, got, expected core.Vec3) {
		const tolerance = 0.01
		if got.Subtract(expected).Length() > tolerance {
			t.Errorf("%s: expected %v, got %v", name, expected, got)
		}
	}
	checkColor("top-left (white)", tex.Pixels[0], core.NewVec3(1, 1, 1))
	checkColor("top-right (red)", tex.Pixels[1], core.NewVec3(1, 0, 0))
	checkColor("bottom-left (green)", tex.Pixels[2], core.NewVec3(0, 1, 0))
	checkColor("bottom-right (blue)", tex.Pixels[3], core.NewVec3(0, 0, 1))
}

// TestLoadTexture_PPM verifies that P6 files are routed to the PPM decoder
func TestLoadTexture_PPM(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "test.ppm")

	data := []byte("P6\n1 2\n255\n\xff\x00\x00\x00\x00\xff")
	if err := os.WriteFile(testFile, data, 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	tex, err := LoadTexture(testFile)
	if err != nil {
		t.Fatalf("LoadTexture failed: %v", err)
	}
	if tex.Width != 1 || tex.Height != 2 {
		t.Errorf("Expected 1x2 texture, got %dx%d", tex.Width, tex.Height)
	}
}

// TestLoadTexture_NotFound verifies error handling for missing files
func TestLoadTexture_NotFound(t *testing.T) {
	if _, err := LoadTexture("nonexistent.ppm"); err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}
}

// TestLoadTexture_Unrecognized verifies error handling for garbage data
func TestLoadTexture_Unrecognized(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "garbage.bin")
	if err := os.WriteFile(testFile, []byte("not an image at all"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadTexture(testFile); err == nil {
		t.Error("Expected error for unrecognized format, got nil")
	}
}

func TestToImage_Clamps(t *testing.T) {
	pixels := []core.Vec3{core.NewVec3(2, 2, 2), core.NewVec3(-0.5, 0.5, 1.5)}
	img := ToImage(2, 1, pixels)

	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 || a>>8 != 255 {
		t.Errorf("Expected sentinel to clamp to white, got (%d,%d,%d,%d)", r>>8, g>>8, b>>8, a>>8)
	}

	r, g, b, _ = img.At(1, 0).RGBA()
	if r>>8 != 0 || b>>8 != 255 {
		t.Errorf("Expected clamped (0,127,255), got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}
