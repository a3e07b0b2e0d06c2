package renderer

import (
	"runtime"
	"sync"
)

// WorkerPool distributes framebuffer rows across parallel workers. Rows
// are independent and each worker writes only the rows it pulls, so no
// synchronization is needed beyond the task and result queues.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool. numWorkers <= 0 selects one
// worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// RenderRows runs renderRow for every row in [0, height) across the pool
// and aggregates the per-row statistics.
func (wp *WorkerPool) RenderRows(height int, renderRow func(j int) RowStats) RenderStats {
	taskQueue := make(chan int, height)
	resultQueue := make(chan RowStats, height)

	var wg sync.WaitGroup
	for w := 0; w < wp.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range taskQueue {
				resultQueue <- renderRow(j)
			}
		}()
	}

	for j := 0; j < height; j++ {
		taskQueue <- j
	}
	close(taskQueue)

	wg.Wait()
	close(resultQueue)

	var stats RenderStats
	for row := range resultQueue {
		stats.TotalPixels += row.Pixels
		stats.HitPixels += row.Hits
	}
	stats.MissPixels = stats.TotalPixels - stats.HitPixels
	return stats
}
