// Package jobs provides scheduled background tasks for the mission
// operations platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. MissionProgressJob - Runs every minute to advance approved missions to
// in progress at their start date and to complete in-progress missions past
// their end date.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(advanceMissionsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The progress job logs and continues on per-mission failures; a version
// conflict with a concurrent workflow action resolves on the next tick.
package jobs
