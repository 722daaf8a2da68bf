package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"partyplanner-backend/internal/jobs"
	"partyplanner-backend/internal/logger"
)

// CronScheduler manages recurring maintenance job scheduling
type CronScheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewCronScheduler creates a new scheduler with the provided job runner
func NewCronScheduler(jobRunner *jobs.JobRunner) *CronScheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &CronScheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *CronScheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.PurgeOldParties, s.jobs.PurgeOldParties)
	if err != nil {
		logger.Error("Failed to register PurgeOldParties job", "error", err)
	}

	logger.Info("All cron jobs registered successfully")
}

// Start begins the cron scheduler
func (s *CronScheduler) Start() {
	logger.Info("Starting cron scheduler...")
	s.cron.Start()
	logger.Info("Cron scheduler started successfully")
}

// Stop gracefully stops the cron scheduler
func (s *CronScheduler) Stop() {
	logger.Info("Stopping cron scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Cron scheduler stopped")
}
