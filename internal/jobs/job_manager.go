package jobs

import (
	"fmt"
	"log/slog"

	"missionops/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	missionProgressJob *MissionProgressJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	advanceMissionsHandler commands.AdvanceMissionsCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		missionProgressJob: NewMissionProgressJob(advanceMissionsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.missionProgressJob.Start(); err != nil {
		return fmt.Errorf("failed to start mission progress job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.missionProgressJob.Stop()
}
