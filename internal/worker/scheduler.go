package worker

import (
	"context"
	"time"

	"github.com/vytor/studybuddy/internal/logger"
)

// Scheduler submits a job built by next once at start and then at every local midnight.
type Scheduler struct {
	pool *Pool
	next func(at time.Time) Job
	now  func() time.Time
	log  *logger.Logger
	done chan struct{}
}

func NewScheduler(pool *Pool, next func(at time.Time) Job) *Scheduler {
	return &Scheduler{
		pool: pool,
		next: next,
		now:  time.Now,
		log:  logger.Default().WithPrefix("scheduler"),
		done: make(chan struct{}),
	}
}

// UntilMidnight returns the time left until the next local midnight after t.
func UntilMidnight(t time.Time) time.Duration {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location()).Sub(t)
}

// Run blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	defer close(s.done)
	s.fire()

	for {
		wait := UntilMidnight(s.now())
		s.log.Debug("next run in %v", wait)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			s.log.Debug("scheduler stopped")
			return
		case <-timer.C:
			s.fire()
		}
	}
}

// Done is closed when Run returns.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

func (s *Scheduler) fire() {
	job := s.next(s.now())
	if err := s.pool.Submit(job); err != nil {
		s.log.Warn("failed to submit %s: %v", job.Name(), err)
	}
}
