package renderer

import (
	"math"
	"testing"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
)

func TestCamera_RayDirectionsNormalized(t *testing.T) {
	camera := NewCamera(64, 48, 30)

	for _, px := range [][2]int{{0, 0}, {63, 0}, {0, 47}, {63, 47}, {32, 24}} {
		ray := camera.Ray(px[0], px[1])
		if math.Abs(ray.Direction.Length()-1) > tolerance {
			t.Errorf("Pixel %v: expected unit direction, got length %f", px, ray.Direction.Length())
		}
		if ray.Origin != core.NewVec3(0, 0, 0) {
			t.Errorf("Pixel %v: expected origin at camera, got %v", px, ray.Origin)
		}
	}
}

func TestCamera_CenterLooksDownNegativeZ(t *testing.T) {
	// With an even resolution the image center falls between the two middle
	// pixel columns/rows, so their directions mirror each other.
	camera := NewCamera(640, 480, 30)

	left := camera.Ray(319, 240).Direction
	right := camera.Ray(320, 240).Direction
	if math.Abs(left.X+right.X) > tolerance {
		t.Errorf("Expected mirrored X components, got %f and %f", left.X, right.X)
	}

	top := camera.Ray(320, 239).Direction
	bottom := camera.Ray(320, 240).Direction
	if math.Abs(top.Y+bottom.Y) > tolerance {
		t.Errorf("Expected mirrored Y components, got %f and %f", top.Y, bottom.Y)
	}

	if right.Z >= 0 {
		t.Errorf("Expected camera to look down -Z, got Z=%f", right.Z)
	}
}

func TestCamera_ImageOrientation(t *testing.T) {
	camera := NewCamera(640, 480, 30)

	// Pixel (0,0) is the top-left corner: direction up and to the left
	corner := camera.Ray(0, 0).Direction
	if corner.X >= 0 || corner.Y <= 0 {
		t.Errorf("Expected top-left ray with X<0, Y>0, got %v", corner)
	}
}

func TestCamera_FOVWidensRays(t *testing.T) {
	narrow := NewCamera(640, 480, 30).Ray(0, 0).Direction
	wide := NewCamera(640, 480, 60).Ray(0, 0).Direction

	if math.Abs(wide.X) <= math.Abs(narrow.X) {
		t.Errorf("Expected wider FOV to spread corner rays: |%f| vs |%f|", wide.X, narrow.X)
	}
}

func TestCamera_Dimensions(t *testing.T) {
	camera := NewCamera(640, 480, 30)
	if camera.Width() != 640 || camera.Height() != 480 {
		t.Errorf("Expected 640x480, got %dx%d", camera.Width(), camera.Height())
	}
}
