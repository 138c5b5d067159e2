package jobs

import (
	"context"
	"log"
	"time"
)

const defaultStep = 100 * time.Millisecond

// Runner executes simulated jobs against a store, one goroutine per job.
type Runner struct {
	store *Store
	step  time.Duration
}

// NewRunner returns a runner that advances job progress every step.
func NewRunner(store *Store, step time.Duration) *Runner {
	if step <= 0 {
		step = defaultStep
	}
	return &Runner{store: store, step: step}
}

// Start begins a job that completes after the given number of steps and
// returns its ID immediately. The job fails with the context error when ctx
// is cancelled mid-flight.
func (r *Runner) Start(ctx context.Context, name string, steps int) int {
	if steps <= 0 {
		steps = 1
	}
	id := r.store.Begin(name)

	go func() {
		ticker := time.NewTicker(r.step)
		defer ticker.Stop()

		for i := 1; i <= steps; i++ {
			select {
			case <-ctx.Done():
				r.store.Finish(id, ctx.Err())
				log.Printf("job %d (%s) cancelled: %v", id, name, ctx.Err())
				return
			case <-ticker.C:
				r.store.SetProgress(id, float64(i)/float64(steps))
			}
		}
		r.store.Finish(id, nil)
	}()

	return id
}
