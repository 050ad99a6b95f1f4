package renderer

import "time"

// RenderStats contains statistics about a completed render pass
type RenderStats struct {
	Width        int           // Image width in pixels
	Height       int           // Image height in pixels
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of camera rays traced
	Rows         int           // Number of row tasks processed
	Workers      int           // Number of parallel workers used
	Elapsed      time.Duration // Wall-clock render time
}
