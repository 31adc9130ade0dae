// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. QRSnapshotJob - Runs every 30 seconds to reconcile QR snapshots that
// are missing or fell behind their order's current status.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(refreshSnapshotsHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The snapshot job logs failures and retries on the next tick; a stale
// snapshot is repaired eventually rather than blocking order mutations.
package jobs
