package jobs

import (
	"partyplanner-backend/internal/config"
	"partyplanner-backend/internal/logger"
	"partyplanner-backend/internal/repository"
)

// JobRunner coordinates all scheduled maintenance jobs
type JobRunner struct {
	partyRepo repository.PartyRepository
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(partyRepo repository.PartyRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{
		partyRepo: partyRepo,
		config:    cfg,
	}
}

// Config exposes the configuration the scheduler reads cron specs from
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
