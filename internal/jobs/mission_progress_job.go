package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"missionops/internal/core/application/usecases/commands"
)

// MissionProgressJob drives time-based mission transitions. Runs every
// minute: approved missions whose travel period has begun move to in
// progress, in-progress missions whose period has ended complete.
type MissionProgressJob struct {
	handler commands.AdvanceMissionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewMissionProgressJob creates a job advancing missions along the clock.
func NewMissionProgressJob(handler commands.AdvanceMissionsCommandHandler, logger *slog.Logger) *MissionProgressJob {
	return &MissionProgressJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "mission_progress_job"),
	}
}

// Start begins the mission progress job to run every minute.
func (j *MissionProgressJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewAdvanceMissionsCommand(time.Now().UTC())
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Mission progress command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Mission progress job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Mission progress job started (running every minute)")
	return nil
}

// Stop stops the mission progress job.
func (j *MissionProgressJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Mission progress job stopped")
}
