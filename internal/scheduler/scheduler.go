package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"concrental-backend/internal/jobs"
	"concrental-backend/internal/logger"
)

// Scheduler drives the recurring jobs off a cron timetable.
type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.Runner
}

// New builds the scheduler and registers the jobs. overdueSpec is a standard
// five-field cron expression, e.g. "0 8 * * *" for every day at 08:00.
func New(runner *jobs.Runner, overdueSpec string) *Scheduler {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{
		cron:   c,
		runner: runner,
	}

	if _, err := c.AddFunc(overdueSpec, runner.SendOverdueReminders); err != nil {
		logger.Error("failed to register overdue reminder job", "spec", overdueSpec, "error", err)
	}

	return s
}

func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop waits for any running job to finish before returning.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("scheduler stopped")
}
