package jobs

import (
	"log"
	"time"

	"github.com/damantine/klinik-wa-bot/internal/storage"
)

// CleanupJob periodically removes expired sessions from store backends that
// cannot expire records natively (memory, postgres). Redis expires keys itself
// and does not need this job.
type CleanupJob struct {
	store     storage.Purger
	interval  time.Duration
	isRunning bool
	stop      chan struct{}
}

// NewCleanupJob creates a new session cleanup job.
func NewCleanupJob(store storage.Purger) *CleanupJob {
	return &CleanupJob{
		store:    store,
		interval: 5 * time.Minute,
		stop:     make(chan struct{}),
	}
}

// Start begins the periodic cleanup.
func (j *CleanupJob) Start() {
	if j.isRunning {
		log.Println("Session cleanup job already running")
		return
	}
	j.isRunning = true

	log.Println("Starting session cleanup job...")
	go j.run()
}

// Stop halts the cleanup job.
func (j *CleanupJob) Stop() {
	if !j.isRunning {
		return
	}
	j.isRunning = false
	close(j.stop)
	log.Println("Stopping session cleanup job...")
}

func (j *CleanupJob) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stop:
			return
		case <-ticker.C:
			purged, err := j.store.PurgeExpired()
			if err != nil {
				log.Printf("❌ Error purging expired sessions: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("🧹 Purged %d expired session(s)", purged)
			}
		}
	}
}
