package renderer

import (
	"fmt"
	"sync"

	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/integrator"
	"github.com/jnguye27/Task-VS-Data-Parallelism/pkg/scene"
)

// BandTask represents a band rendering task for the worker pool
type BandTask struct {
	Band        *Band
	TaskID      int          // For deterministic ordering
	Framebuffer *Framebuffer // Shared framebuffer to write to
}

// BandResult contains the result from rendering a band
type BandResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel band rendering
type WorkerPool struct {
	taskQueue   chan BandTask
	resultQueue chan BandResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual band rendering tasks
type Worker struct {
	ID          int
	renderer    *BandRenderer
	taskQueue   chan BandTask
	resultQueue chan BandResult
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Every worker shares the same read-only scene.
func NewWorkerPool(s *scene.Scene, camera *Camera, integratorInst integrator.Integrator, numWorkers, maxTasks int) *WorkerPool {
	numWorkers = max(numWorkers, 1)
	maxTasks = max(maxTasks, numWorkers)

	wp := &WorkerPool{
		taskQueue:   make(chan BandTask, maxTasks),   // Buffer for all tasks
		resultQueue: make(chan BandResult, maxTasks), // Buffer for all results
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:          i,
			renderer:    NewBandRenderer(s, camera, integratorInst),
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue and blocks until every worker has exited
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a band task to the worker pool
func (wp *WorkerPool) SubmitTask(task BandTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed band result
func (wp *WorkerPool) GetResult() (BandResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		w.resultQueue <- w.renderTask(task)
	}
}

// renderTask renders one band directly into the shared framebuffer. Bands
// never overlap, so no locking is needed. A panic becomes the task's error.
func (w *Worker) renderTask(task BandTask) (result BandResult) {
	result.TaskID = task.TaskID

	defer func() {
		if r := recover(); r != nil {
			result.Error = fmt.Errorf("worker %d: band %d: %v", w.ID, task.Band.ID, r)
		}
	}()

	result.Stats = w.renderer.RenderBand(task.Band.Bounds, task.Framebuffer)
	return result
}
