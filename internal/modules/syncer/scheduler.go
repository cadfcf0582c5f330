package syncer

import (
	"context"
	"log"
	"time"
)

// Scheduler triggers full sync runs on a fixed interval. It replaces
// an external cron for deployments that keep the process resident.
type Scheduler struct {
	engine   *Engine
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewScheduler(engine *Engine, interval time.Duration) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		engine:   engine,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins the schedule. The first run fires immediately.
func (s *Scheduler) Start() {
	log.Printf("sync scheduler started, interval %v", s.interval)

	go s.runOnce()

	ticker := time.NewTicker(s.interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				s.runOnce()
			case <-s.ctx.Done():
				ticker.Stop()
				log.Println("sync scheduler stopped")
				return
			}
		}
	}()
}

// Stop cancels the schedule. A run already in flight finishes.
func (s *Scheduler) Stop() {
	s.cancel()
}

func (s *Scheduler) runOnce() {
	report := s.engine.SyncAll(s.ctx)
	if report.Success {
		log.Printf("scheduled sync: %s", report.Message)
	} else {
		log.Printf("scheduled sync finished with errors: %s", report.Message)
	}
}
