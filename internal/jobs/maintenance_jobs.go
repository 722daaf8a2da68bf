package jobs

import (
	"context"
	"time"

	"partyplanner-backend/internal/logger"
)

// PurgeOldParties deletes parties whose start time predates the
// configured retention window, together with their invite and
// attendance rows.
func (jr *JobRunner) PurgeOldParties() {
	jr.runWithRecovery("PurgeOldParties", func() {
		ctx := context.Background()

		retention := time.Duration(jr.config.Scheduler.PartyRetentionDays) * 24 * time.Hour
		cutoff := time.Now().UTC().Add(-retention)

		purged, err := jr.partyRepo.DeleteOlderThan(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to purge old parties", "cutoff", cutoff, "error", err)
			return
		}

		logger.Info("Old parties purged", "cutoff", cutoff, "count", purged)
	})
}
