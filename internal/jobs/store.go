package jobs

import (
	"sync"
	"time"
)

// State describes where a job is in its lifecycle.
type State string

const (
	StateRunning State = "running"
	StateDone    State = "done"
	StateFailed  State = "failed"
)

// Job is one unit of simulated background work.
type Job struct {
	ID       int
	Name     string
	State    State
	Progress float64 // 0.0 to 1.0
	Started  time.Time
	Finished time.Time
	Err      string
}

// Running reports whether the job is still in flight.
func (j Job) Running() bool {
	return j.State == StateRunning
}

// Snapshot is the latest job data available to the UI.
type Snapshot struct {
	Jobs        []Job
	LastUpdated time.Time
}

// Active returns the most recently started job that is still running.
func (s Snapshot) Active() (Job, bool) {
	for i := len(s.Jobs) - 1; i >= 0; i-- {
		if s.Jobs[i].Running() {
			return s.Jobs[i], true
		}
	}
	return Job{}, false
}

// Store coordinates concurrent updates to the job snapshot. The runner
// goroutines write; the UI reads copies.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	nextID   int
}

// Begin records a new running job and returns its ID.
func (s *Store) Begin(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.snapshot.Jobs = append(s.snapshot.Jobs, Job{
		ID:      s.nextID,
		Name:    name,
		State:   StateRunning,
		Started: time.Now(),
	})
	s.snapshot.LastUpdated = time.Now()
	return s.nextID
}

// SetProgress updates a running job's progress, clamped to [0, 1]. Updates
// to finished or unknown jobs are ignored.
func (s *Store) SetProgress(id int, progress float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snapshot.Jobs {
		j := &s.snapshot.Jobs[i]
		if j.ID != id || j.State != StateRunning {
			continue
		}
		if progress < 0 {
			progress = 0
		}
		if progress > 1 {
			progress = 1
		}
		j.Progress = progress
		s.snapshot.LastUpdated = time.Now()
		return
	}
}

// Finish marks a job done, or failed when err is non-nil. Finishing an
// already finished or unknown job is a no-op.
func (s *Store) Finish(id int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.snapshot.Jobs {
		j := &s.snapshot.Jobs[i]
		if j.ID != id || j.State != StateRunning {
			continue
		}
		j.Finished = time.Now()
		if err != nil {
			j.State = StateFailed
			j.Err = err.Error()
		} else {
			j.State = StateDone
			j.Progress = 1
		}
		s.snapshot.LastUpdated = time.Now()
		return
	}
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Jobs = cloneJobs(s.snapshot.Jobs)
	return snap
}

// Job returns a copy of the job with the given ID.
func (s *Store) Job(id int) (Job, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, j := range s.snapshot.Jobs {
		if j.ID == id {
			return j, true
		}
	}
	return Job{}, false
}

func cloneJobs(jobs []Job) []Job {
	if len(jobs) == 0 {
		return nil
	}
	dup := make([]Job, len(jobs))
	copy(dup, jobs)
	return dup
}
