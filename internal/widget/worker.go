package widget

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/i474232898/weather-search/internal/scheduler"
)

// HealthChecker checks that the backend answers.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// registerTimeout bounds the health check made on registration.
const registerTimeout = 5 * time.Second

// HeartbeatWorker is the widget's background worker: once registered it
// periodically checks the backend and logs when it becomes unreachable.
type HeartbeatWorker struct {
	checker  HealthChecker
	interval time.Duration
	timeout  time.Duration

	mu      sync.Mutex
	sched   *scheduler.Scheduler
	down    bool
	stopped bool
}

func NewHeartbeatWorker(checker HealthChecker, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{checker: checker, interval: interval, timeout: registerTimeout}
}

// Register checks the backend once and, if it answers within the
// registration timeout, starts the periodic job. Register fails after Stop.
func (w *HeartbeatWorker) Register(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.checker.Health(checkCtx); err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return errors.New("worker stopped")
	}
	if w.sched != nil {
		return nil
	}

	sched := scheduler.New("widget-heartbeat", w.interval, w.beat)
	if err := sched.Start(); err != nil {
		return err
	}
	w.sched = sched
	return nil
}

func (w *HeartbeatWorker) beat(ctx context.Context) error {
	err := w.checker.Health(ctx)

	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case err != nil && !w.down:
		w.down = true
		log.Printf("WARN: widget: backend went away: %v", err)
	case err == nil && w.down:
		w.down = false
		log.Println("INFO: widget: backend is reachable again")
	}
	return nil
}

// Stop stops the periodic job and prevents later registration.
func (w *HeartbeatWorker) Stop() {
	w.mu.Lock()
	w.stopped = true
	sched := w.sched
	w.sched = nil
	w.mu.Unlock()

	// beat takes w.mu, so the scheduler is stopped without holding it.
	if sched != nil {
		sched.Stop()
	}
}

var _ Registrar = (*HeartbeatWorker)(nil)
