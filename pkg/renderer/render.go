package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/akopec/go-whitted-raytracer/pkg/core"
)

// Render traces one primary ray per pixel and returns the row-major color
// buffer plus render statistics. Rows are distributed across workers; every
// worker writes only its own rows, so the buffer needs no locking and the
// result is bit-identical regardless of worker count.
func (w *Whitted) Render(camera *Camera) ([]core.Vec3, RenderStats) {
	width, height := camera.Width(), camera.Height()
	pixels := make([]core.Vec3, width*height)

	workers := w.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	start := time.Now()
	if workers == 1 {
		for y := 0; y < height; y++ {
			w.renderRow(camera, y, pixels)
		}
	} else {
		rows := make(chan int)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for y := range rows {
					w.renderRow(camera, y, pixels)
				}
			}()
		}
		for y := 0; y < height; y++ {
			rows <- y
		}
		close(rows)
		wg.Wait()
	}

	stats := RenderStats{
		Width:   width,
		Height:  height,
		Pixels:  width * height,
		Workers: workers,
		Elapsed: time.Since(start),
	}
	return pixels, stats
}

// renderRow traces every pixel of row y into the shared buffer
func (w *Whitted) renderRow(camera *Camera, y int, pixels []core.Vec3) {
	for x := 0; x < camera.Width(); x++ {
		ray := camera.Ray(x, y)
		pixels[y*camera.Width()+x] = w.Trace(ray.Origin, ray.Direction, 0)
	}
}
