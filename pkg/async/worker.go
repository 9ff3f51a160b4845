package async

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"kentkonut/pkg/logger"
)

// Task a unit of background work
type Task struct {
	ID       string
	Name     string
	Handler  func(ctx context.Context) error
	Timeout  time.Duration
	RetryMax int
}

// Worker bounded background task pool
type Worker struct {
	taskQueue chan Task
	logger    *logger.Logger
	wg        sync.WaitGroup
	seq       atomic.Int64

	mu      sync.RWMutex
	stopped bool
}

// NewWorker creates a worker with a queue of the given capacity
func NewWorker(queueSize int, logger *logger.Logger) *Worker {
	return &Worker{
		taskQueue: make(chan Task, queueSize),
		logger:    logger,
	}
}

// Start launches numWorkers goroutines
func (w *Worker) Start(numWorkers int) {
	for i := 0; i < numWorkers; i++ {
		w.wg.Add(1)
		go w.processTask()
	}
}

// Stop rejects new tasks and waits for the queue to drain
func (w *Worker) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.taskQueue)
	w.mu.Unlock()

	w.wg.Wait()
}

// AddTask queues fn without retries. Returns false when the queue is full or the worker is stopped.
func (w *Worker) AddTask(name string, fn func(ctx context.Context) error) bool {
	return w.Submit(Task{Name: name, Handler: fn, Timeout: 30 * time.Second})
}

// Submit queues a task without blocking the caller
func (w *Worker) Submit(task Task) bool {
	if task.ID == "" {
		task.ID = fmt.Sprintf("task_%d", w.seq.Add(1))
	}

	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.stopped {
		w.logger.Warn("worker stopped, task dropped", "task_id", task.ID, "task", task.Name)
		return false
	}

	select {
	case w.taskQueue <- task:
		return true
	default:
		w.logger.Warn("task queue full, task dropped", "task_id", task.ID, "task", task.Name)
		return false
	}
}

func (w *Worker) processTask() {
	defer w.wg.Done()

	for task := range w.taskQueue {
		w.executeTask(task)
	}
}

func (w *Worker) executeTask(task Task) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("async task panicked", "task_id", task.ID, "task", task.Name, "panic", r)
		}
	}()

	ctx := context.Background()
	if task.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, task.Timeout)
		defer cancel()
	}

	var err error
	for attempt := 0; attempt <= task.RetryMax; attempt++ {
		if attempt > 0 {
			w.logger.Info("retrying task", "task_id", task.ID, "task", task.Name, "attempt", attempt)
			select {
			case <-time.After(time.Second * time.Duration(attempt)):
			case <-ctx.Done():
				err = ctx.Err()
			}
			if ctx.Err() != nil {
				break
			}
		}

		err = task.Handler(ctx)
		if err == nil {
			break
		}
	}

	if err != nil {
		w.logger.Error("async task failed", "task_id", task.ID, "task", task.Name, "error", err)
		return
	}
	w.logger.Debug("async task completed", "task_id", task.ID, "task", task.Name, "duration", time.Since(start))
}
