package renderer

import "time"

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	Width   int           // Image width in pixels
	Height  int           // Image height in pixels
	Pixels  int           // Total pixels rendered
	Workers int           // Workers used for the pass
	Elapsed time.Duration // Wall-clock render time
}
