// Package jobs provides scheduled background tasks for the booking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the booking service.
//
// # Available Jobs
//
// 1. ExpirationSweepJob - Runs every 30 seconds to expire pending jobs
// whose expiration instant has passed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sweepHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Shutdown
//
// StopAll stops scheduling new runs and blocks until any in-flight sweep
// has completed, so shutdown never interrupts a half-applied expiration.
// A sweep that loses a race against a concurrent acceptance skips that job
// silently; the accepted assignment stands.
package jobs
