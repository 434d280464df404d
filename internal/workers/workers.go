package workers

import "context"

// Workers starts and stops a fixed set of workers in order.
type Workers struct {
	workers []Worker
}

// NewWorkers drops nil entries so callers can pass optional workers.
func NewWorkers(workers ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range workers {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

// Len returns the number of managed workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
