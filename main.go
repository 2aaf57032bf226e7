package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/akopec/go-whitted-raytracer/pkg/loaders"
	"github.com/akopec/go-whitted-raytracer/pkg/renderer"
	"github.com/akopec/go-whitted-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'diffuse'")
	texturePath := flag.String("texture", "", "Optional PPM/PNG texture for the center sphere")
	width := flag.Int("width", 640, "Image width in pixels")
	height := flag.Int("height", 480, "Image height in pixels")
	fov := flag.Float64("fov", 30, "Vertical field of view in degrees")
	workers := flag.Int("workers", 0, "Render workers (0 = number of CPUs)")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	outDir := flag.String("out", "output", "Output directory")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Reflective and refractive spheres over a ground sphere")
		fmt.Println("  diffuse - The same layout with all mirrors and glass disabled")
		return
	}

	if err := run(*sceneType, *texturePath, *width, *height, *fov, *workers, *format, *outDir); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(sceneType, texturePath string, width, height int, fov float64, workers int, format, outDir string) error {
	s, err := createScene(sceneType, texturePath)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Printf("Rendering %s scene at %dx%d...\n", sceneType, width, height)

	engine := renderer.NewWhitted(s, renderer.Config{Workers: workers})
	camera := renderer.NewCamera(width, height, fov)
	pixels, stats := engine.Render(camera)

	fmt.Printf("Render completed in %v (%d pixels, %d workers)\n",
		stats.Elapsed, stats.Pixels, stats.Workers)

	filename := outputFilename(outDir, sceneType, format)
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	switch format {
	case "ppm":
		err = loaders.EncodePPM(file, width, height, pixels)
	case "png":
		err = loaders.WritePNG(file, width, height, pixels)
	default:
		err = fmt.Errorf("unknown output format %q", format)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene builds the scene selected on the command line
func createScene(sceneType, texturePath string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(texturePath)
	case "diffuse":
		return scene.NewDiffuseScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// outputFilename builds a timestamped output path like the render runs
// produce: output/render_default_20060102_150405.png
func outputFilename(outDir, sceneType, format string) string {
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(outDir, fmt.Sprintf("render_%s_%s.%s", sceneType, timestamp, format))
}
