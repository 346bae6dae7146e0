package jobs

import (
	"log"
	"time"

	"reviu-server/middleware"
	"reviu-server/services"
)

// SessionCleanupJob expires abandoned wizard sessions and releases idle
// rate-limiter state.
type SessionCleanupJob struct {
	wizard   *services.WizardManager
	ttl      time.Duration
	stopChan chan bool
}

// NewSessionCleanupJob creates a cleanup job for the given wizard manager
func NewSessionCleanupJob(wizard *services.WizardManager, ttl time.Duration) *SessionCleanupJob {
	return &SessionCleanupJob{
		wizard:   wizard,
		ttl:      ttl,
		stopChan: make(chan bool),
	}
}

// Start begins the cleanup job
func (j *SessionCleanupJob) Start() {
	go j.run()
	log.Println("🚀 Session cleanup job started")
}

// Stop stops the cleanup job
func (j *SessionCleanupJob) Stop() {
	j.stopChan <- true
	log.Println("🛑 Session cleanup job stopped")
}

func (j *SessionCleanupJob) run() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := j.wizard.Cleanup(j.ttl); removed > 0 {
				log.Printf("⏰ Expired %d abandoned wizard sessions", removed)
			}
			middleware.CleanupRateLimiters()
		case <-j.stopChan:
			return
		}
	}
}
