package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Job is one refresh pass. Errors are logged and never stop the schedule.
type Job func(ctx context.Context) error

// Scheduler fires jobs on fixed intervals. Each tick starts its own run, so a
// slow run may overlap the next one.
type Scheduler struct {
	log *zap.Logger
	wg  sync.WaitGroup
}

func New(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{log: logger.Named("jobs")}
}

// Every runs job on each tick until ctx is canceled. A non-positive interval
// schedules nothing.
func (s *Scheduler) Every(ctx context.Context, name string, interval time.Duration, job Job) {
	if interval <= 0 {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.wg.Add(1)
				go func() {
					defer s.wg.Done()
					_ = s.RunNow(ctx, name, job)
				}()
			}
		}
	}()
}

func (s *Scheduler) RunNow(ctx context.Context, name string, job Job) error {
	start := time.Now()
	err := job(ctx)
	if err != nil {
		s.log.Warn("job run failed", zap.String("job", name), zap.Duration("elapsed", time.Since(start)), zap.Error(err))
		return err
	}
	s.log.Debug("job run completed", zap.String("job", name), zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Wait blocks until every schedule loop and in-flight run has returned.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}
