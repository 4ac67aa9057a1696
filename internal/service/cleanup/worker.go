package cleanup

import (
	"context"
	"log"
	"time"
)

// SessionStore is the part of the session manager the worker needs.
type SessionStore interface {
	CleanupOldSessions(ttl, unattachedTTL time.Duration) int
}

type Worker struct {
	Sessions      SessionStore
	Interval      time.Duration
	TTL           time.Duration
	UnattachedTTL time.Duration
}

func NewWorker(sessions SessionStore, interval, ttl, unattachedTTL time.Duration) *Worker {
	return &Worker{Sessions: sessions, Interval: interval, TTL: ttl, UnattachedTTL: unattachedTTL}
}

// Start runs a cleanup pass every Interval until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	log.Println("[CLEANUP] Background worker started")
	for {
		select {
		case <-ctx.Done():
			log.Println("[CLEANUP] Background worker stopped")
			return
		case <-ticker.C:
			w.runCleanup()
		}
	}
}

// runCleanup executes the actual cleanup logic
func (w *Worker) runCleanup() int {
	removed := w.Sessions.CleanupOldSessions(w.TTL, w.UnattachedTTL)
	if removed > 0 {
		log.Printf("[CLEANUP] Removed %d abandoned sessions", removed)
	}
	return removed
}
