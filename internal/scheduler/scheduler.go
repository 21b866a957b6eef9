package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// Job is one run of a periodic task. The context is cancelled after the job timeout.
type Job func(ctx context.Context) error

// Scheduler runs a single named job at a fixed interval.
type Scheduler struct {
	scheduler *gocron.Scheduler
	name      string
	interval  time.Duration
	timeout   time.Duration
	job       Job
}

// New creates a new Scheduler. A non-positive interval falls back to 15 minutes.
func New(name string, interval time.Duration, job Job) *Scheduler {
	if interval <= 0 {
		interval = 15 * time.Minute
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		name:      name,
		interval:  interval,
		timeout:   30 * time.Second,
		job:       job,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if s.job == nil {
		return fmt.Errorf("scheduler %s: no job configured", s.name)
	}

	_, err := s.scheduler.Every(s.interval).Do(s.run)
	if err != nil {
		return fmt.Errorf("scheduler %s: %w", s.name, err)
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.job(ctx); err != nil {
		log.Printf("scheduler %s: job failed: %v", s.name, err)
	}
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
