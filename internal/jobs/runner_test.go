package jobs

import (
	"context"
	"testing"
	"time"
)

// waitFor polls the store until the job leaves the running state.
func waitFor(t *testing.T, s *Store, id int) Job {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if j, ok := s.Job(id); ok && !j.Running() {
			return j
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("job %d still running after deadline", id)
	return Job{}
}

func TestRunner_CompletesJob(t *testing.T) {
	var s Store
	r := NewRunner(&s, time.Millisecond)

	id := r.Start(context.Background(), "save", 3)
	j := waitFor(t, &s, id)

	if j.State != StateDone {
		t.Fatalf("state = %q, want done", j.State)
	}
	if j.Progress != 1.0 {
		t.Fatalf("progress = %v, want 1.0", j.Progress)
	}
}

func TestRunner_CancelFailsJob(t *testing.T) {
	var s Store
	r := NewRunner(&s, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	id := r.Start(ctx, "save", 1000)
	cancel()

	j := waitFor(t, &s, id)
	if j.State != StateFailed {
		t.Fatalf("state = %q, want failed after cancel", j.State)
	}
	if j.Err == "" {
		t.Fatal("cancelled job has no error recorded")
	}
}

func TestNewRunner_DefaultsStep(t *testing.T) {
	r := NewRunner(&Store{}, 0)
	if r.step != defaultStep {
		t.Fatalf("step = %v, want %v", r.step, defaultStep)
	}
}
