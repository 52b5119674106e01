package jobs

import (
	"sync/atomic"
	"testing"
	"time"
)

type countingPurger struct {
	calls atomic.Int32
}

func (c *countingPurger) PurgeExpired() (int, error) {
	c.calls.Add(1)
	return 0, nil
}

func TestCleanupJob_StartStop(t *testing.T) {
	purger := &countingPurger{}
	job := NewCleanupJob(purger)
	job.interval = 10 * time.Millisecond

	job.Start()
	time.Sleep(60 * time.Millisecond)
	job.Stop()

	calls := purger.calls.Load()
	if calls == 0 {
		t.Error("expected the purger to be called at least once")
	}

	// No further calls once stopped.
	time.Sleep(30 * time.Millisecond)
	if purger.calls.Load() != calls {
		t.Error("purger called after Stop")
	}
}

func TestCleanupJob_StartIsIdempotent(t *testing.T) {
	job := NewCleanupJob(&countingPurger{})
	job.interval = time.Hour

	job.Start()
	job.Start() // second call must be a no-op
	job.Stop()
}
