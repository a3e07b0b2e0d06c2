package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit a surface
	MissPixels  int           // Pixels filled with the background color
	RenderTime  time.Duration // Wall-clock render duration
}

// RowStats tracks statistics for a single framebuffer row
type RowStats struct {
	Pixels int // Pixels rendered in this row
	Hits   int // Primary-ray hits in this row
}
